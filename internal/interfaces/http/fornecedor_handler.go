package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/dto"
	"github.com/coderonin/barstock-api/internal/application/usecase"
)

// FornecedorHandler CRUD de fornecedores.
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler de fornecedores.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FornecedorInput  true  "nome, telefone, prazoEntregaDias"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.FornecedorInput
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
// @Summary      Listar fornecedores (cursor, nome ASC)
// @Tags         fornecedores
// @Produce      json
// @Param        cursor  query  string  false  "cursor da página anterior"
// @Param        limit   query  int     false  "tamanho da página (padrão 20)"
// @Success      200  {object}  dto.FornecedorListResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	cursor := cursorParam(c)
	limit := c.QueryInt("limit", 20)
	out, err := h.uc.List(c.UserContext(), GetEstabelecimentoID(c), cursor, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar fornecedor (parcial)
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "id do fornecedor"
// @Param        body  body  dto.FornecedorInput true  "campos a editar"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.FornecedorInput
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
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Produce      json
// @Param        id  path  string  true  "id do fornecedor"
// @Success      204
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetEstabelecimentoID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
