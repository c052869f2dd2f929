package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/application/estoque"
)

// MovimentacaoHandler registro e listagem do razão de movimentações.
type MovimentacaoHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler de movimentações.
func NewMovimentacaoHandler(uc *estoque.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimentação de estoque
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimentacaoRequest  true  "produtoId, tipo, quantidade, observacao"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.UserContext(), GetEstabelecimentoID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações (cursor)
// @Tags         movimentacoes
// @Produce      json
// @Param        cursor     query  string  false  "cursor da página anterior"
// @Param        limit      query  int     false  "tamanho da página (padrão 20)"
// @Param        produtoId  query  string  false  "filtrar por produto"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	cursor := cursorParam(c)
	limit := c.QueryInt("limit", 20)
	produtoID := c.Query("produtoId")
	if produtoID == "" {
		produtoID = c.Query("produto_id")
	}
	out, err := h.uc.Listar(c.UserContext(), GetEstabelecimentoID(c), cursor, limit, produtoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
