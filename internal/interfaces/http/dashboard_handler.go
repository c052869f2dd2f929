package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coderonin/barstock-api/internal/application/usecase"
)

// DashboardHandler agregados do painel do estabelecimento e do sistema.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	adminUC     *usecase.AdminUseCase
}

// NewDashboardHandler constrói o handler de painéis.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, adminUC *usecase.AdminUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, adminUC: adminUC}
}

// Get godoc
// @Summary      Painel do estabelecimento
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetData(c.UserContext(), GetEstabelecimentoID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Admin godoc
// @Summary      Estatísticas globais do sistema (somente ADMIN)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.adminUC.GetDashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
