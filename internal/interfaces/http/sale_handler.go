package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas
// @Description  Con ?date=YYYY-MM-DD recarga el espejo filtrado por esa fecha;
// @Description  sin filtro sirve el espejo vigente. Los errores de conexión no
// @Description  vacían la respuesta: se reflejan en using_fallback y error.
// @Tags         sales
// @Produce      json
// @Param        date  query  string  false  "Fecha exacta (YYYY-MM-DD)"
// @Success      200   {object}  dto.SaleCollectionResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		_ = h.uc.Fetch(c.UserContext(), date)
	}
	return c.JSON(h.uc.List())
}

// Range godoc
// @Summary      Ventas por rango de fechas
// @Tags         sales
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200    {array}   dto.SaleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales/range [get]
func (h *SaleHandler) Range(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end son requeridos"})
	}
	out, err := h.uc.ByDateRange(c.UserContext(), start, end)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock del producto y registra el ingreso en caja.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
