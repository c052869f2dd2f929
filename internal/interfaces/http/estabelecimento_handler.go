package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/usecase"
)

// EstabelecimentoHandler leitura do estabelecimento autenticado.
type EstabelecimentoHandler struct {
	uc *usecase.EstabelecimentoUseCase
}

// NewEstabelecimentoHandler constrói o handler de estabelecimento.
func NewEstabelecimentoHandler(uc *usecase.EstabelecimentoUseCase) *EstabelecimentoHandler {
	return &EstabelecimentoHandler{uc: uc}
}

// Me godoc
// @Summary      Estabelecimento do token + identidade autenticada
// @Tags         estabelecimento
// @Produce      json
// @Success      200  {object}  dto.EstabelecimentoMeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estabelecimento/me [get]
func (h *EstabelecimentoHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetMe(c.UserContext(), GetEstabelecimentoID(c), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
