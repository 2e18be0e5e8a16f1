package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo disminuye a través de una venta; MinStock define el umbral
// de stock bajo (stock <= min_stock).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       int             // unidades disponibles, >= 0
	Category    string
	MinStock    int // umbral de stock bajo, >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el producto está en o por debajo de su umbral mínimo.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// ProductPatch campos opcionales para una actualización parcial de Product.
// Un campo nil se deja sin tocar.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	MinStock    *int
}

// Apply fusiona el patch sobre el producto y estampa UpdatedAt.
func (pp ProductPatch) Apply(p *Product, now time.Time) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.MinStock != nil {
		p.MinStock = *pp.MinStock
	}
	p.UpdatedAt = now
}
