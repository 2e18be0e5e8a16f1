package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta. Es inmutable una vez creada: ProductName y
// UnitPrice son una foto del producto al momento de vender, así el histórico
// queda estable aunque el producto se edite o elimine después.
// Total debe ser Quantity × UnitPrice al momento de creación.
type Sale struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int // >= 1
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	SaleDate    string // fecha calendario YYYY-MM-DD
	CreatedAt   time.Time
}
