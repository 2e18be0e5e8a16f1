package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// StatusHandler expone el indicador de base de datos y el reintento manual.
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// List godoc
// @Summary      Estado de conexión por tabla
// @Tags         status
// @Produce      json
// @Success      200  {array}  repository.Status
// @Router       /api/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Statuses())
}

// Refresh godoc
// @Summary      Reintentar conexión
// @Description  Re-ejecuta el fetch de todas las tablas. Siempre responde con
// @Description  el estado resultante; los errores quedan en cada entrada.
// @Tags         status
// @Produce      json
// @Success      200  {array}  repository.Status
// @Router       /api/status/refresh [post]
func (h *StatusHandler) Refresh(c *fiber.Ctx) error {
	_ = h.uc.RefreshAll(c.UserContext())
	return c.JSON(h.uc.Statuses())
}
