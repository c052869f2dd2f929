package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/plano"
)

// PlanoHandler visões read-only do motor de cotas.
type PlanoHandler struct {
	uc *plano.UseCase
}

// NewPlanoHandler constrói o handler de plano.
func NewPlanoHandler(uc *plano.UseCase) *PlanoHandler {
	return &PlanoHandler{uc: uc}
}

// Limites godoc
// @Summary      Limites efetivos do plano (-1 = ilimitado)
// @Tags         plano
// @Produce      json
// @Success      200  {object}  dto.LimitesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plano/limites [get]
func (h *PlanoHandler) Limites(c *fiber.Ctx) error {
	out, err := h.uc.GetLimites(c.UserContext(), GetEstabelecimentoID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Uso godoc
// @Summary      Uso atual: produtos, usuários, movimentações do mês
// @Tags         plano
// @Produce      json
// @Success      200  {object}  dto.UsoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plano/uso [get]
func (h *PlanoHandler) Uso(c *fiber.Ctx) error {
	out, err := h.uc.GetUso(c.UserContext(), GetEstabelecimentoID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Status do plano: percentuais, alertas e recomendação de upgrade
// @Tags         plano
// @Produce      json
// @Success      200  {object}  dto.PlanoStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plano/status [get]
func (h *PlanoHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.GetStatus(c.UserContext(), GetEstabelecimentoID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
