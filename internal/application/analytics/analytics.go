// Package analytics agrega los espejos en memoria para el panel: conteos de
// inventario, totales de venta y resumen diario de caja. Todas las funciones
// son puras sobre slices; no tocan el backend.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// LowStockCount cuenta los productos con stock en o por debajo del mínimo.
func LowStockCount(products []entity.Product) int {
	n := 0
	for i := range products {
		if products[i].LowStock() {
			n++
		}
	}
	return n
}

// TotalSalesAmount suma los totales de todas las ventas.
func TotalSalesAmount(sales []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for i := range sales {
		sum = sum.Add(sales[i].Total)
	}
	return sum
}

// SalesOn filtra las ventas cuya sale_date coincide exactamente con date
// (formato YYYY-MM-DD). Conserva el orden de entrada.
func SalesOn(sales []entity.Sale, date string) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for i := range sales {
		if sales[i].SaleDate == date {
			out = append(out, sales[i])
		}
	}
	return out
}

// CashSummary resumen de caja para una fecha.
type CashSummary struct {
	Date     string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// SummarizeCash acumula los movimientos con movement_date == date.
// Balance = ingresos - egresos; los montos se almacenan sin signo.
func SummarizeCash(movements []entity.CashMovement, date string) CashSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for i := range movements {
		if movements[i].MovementDate != date {
			continue
		}
		switch movements[i].Type {
		case entity.MovementIncome:
			income = income.Add(movements[i].Amount)
		case entity.MovementExpense:
			expenses = expenses.Add(movements[i].Amount)
		}
	}
	return CashSummary{
		Date:     date,
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}
