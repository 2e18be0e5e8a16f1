package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// BalanceTransferHandler maneja las peticiones HTTP para traslados de saldo.
type BalanceTransferHandler struct {
	uc *usecase.BalanceTransferUseCase
}

// NewBalanceTransferHandler construye el handler.
func NewBalanceTransferHandler(uc *usecase.BalanceTransferUseCase) *BalanceTransferHandler {
	return &BalanceTransferHandler{uc: uc}
}

// List godoc
// @Summary      Listar traslados de saldo
// @Tags         transfers
// @Produce      json
// @Success      200  {object}  dto.BalanceTransferCollectionResponse
// @Router       /api/balance-transfers [get]
func (h *BalanceTransferHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Registrar traslado de saldo
// @Description  Asiento informativo entre dos fechas; no afecta stock ni caja.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBalanceTransferRequest  true  "Fechas, monto y descripción"
// @Success      201   {object}  dto.BalanceTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/balance-transfers [post]
func (h *BalanceTransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBalanceTransferRequest
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
