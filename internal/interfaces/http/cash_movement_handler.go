package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// CashMovementHandler maneja las peticiones HTTP para la caja diaria.
type CashMovementHandler struct {
	uc *usecase.CashMovementUseCase
}

// NewCashMovementHandler construye el handler.
func NewCashMovementHandler(uc *usecase.CashMovementUseCase) *CashMovementHandler {
	return &CashMovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de caja
// @Description  Con ?date=YYYY-MM-DD recarga el espejo filtrado por esa fecha.
// @Tags         cash
// @Produce      json
// @Param        date  query  string  false  "Fecha exacta (YYYY-MM-DD)"
// @Success      200   {object}  dto.CashMovementCollectionResponse
// @Router       /api/cash-movements [get]
func (h *CashMovementHandler) List(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		_ = h.uc.Fetch(c.UserContext(), date)
	}
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         cash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashMovementRequest  true  "Tipo, monto y descripción"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-movements [post]
func (h *CashMovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
