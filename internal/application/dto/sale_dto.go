package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. El precio y el nombre
// del producto se toman del producto referenciado, nunca del cliente.
type CreateSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	SaleDate    string          `json:"sale_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleCollectionResponse colección de ventas con el estado del repositorio.
type SaleCollectionResponse struct {
	Items         []SaleResponse `json:"items"`
	UsingFallback bool           `json:"using_fallback"`
	Error         string         `json:"error,omitempty"`
}
