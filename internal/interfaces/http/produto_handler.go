package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/application/usecase"
)

// ProdutoHandler CRUD de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler de produtos.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto (gate de plano)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoInput  true  "produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProdutoInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetEstabelecimentoID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar produtos (cursor)
// @Tags         produtos
// @Produce      json
// @Param        cursor  query  string  false  "cursor da página anterior"
// @Param        limit   query  int     false  "tamanho da página (padrão 20)"
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	cursor := cursorParam(c)
	limit := c.QueryInt("limit", 20)
	out, err := h.uc.List(c.UserContext(), GetEstabelecimentoID(c), cursor, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar produto (parcial)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "id do produto"
// @Param        body  body  dto.ProdutoInput true  "campos a editar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProdutoInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetEstabelecimentoID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover produto
// @Tags         produtos
// @Produce      json
// @Param        id  path  string  true  "id do produto"
// @Success      204
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetEstabelecimentoID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// cursorParam lê ?cursor=; ausente vira nil (primeira página).
func cursorParam(c *fiber.Ctx) *string {
	if v := c.Query("cursor"); v != "" {
		return &v
	}
	return nil
}
