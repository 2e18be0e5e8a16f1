package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// DashboardHandler expone el resumen del panel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del panel
// @Description  Inventario, ventas y caja de la fecha indicada (vacío = hoy).
// @Tags         dashboard
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD)"
// @Success      200   {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(c.Query("date")))
}
