package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/IIJPRII/VeggieBurger/internal/application/analytics"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

func TestLowStockCount(t *testing.T) {
	products := []entity.Product{
		{Stock: 5, MinStock: 2},
		{Stock: 1, MinStock: 2},
		{Stock: 2, MinStock: 2}, // el umbral es inclusivo
		{Stock: 0, MinStock: 0},
	}
	assert.Equal(t, 3, analytics.LowStockCount(products))
	assert.Equal(t, 0, analytics.LowStockCount(nil))
}

func TestTotalSalesAmount(t *testing.T) {
	sales := []entity.Sale{
		{Total: decimal.NewFromInt(300)},
		{Total: decimal.NewFromFloat(99.5)},
	}
	assert.True(t, analytics.TotalSalesAmount(sales).Equal(decimal.NewFromFloat(399.5)))
	assert.True(t, analytics.TotalSalesAmount(nil).Equal(decimal.Zero))
}

func TestSalesOn(t *testing.T) {
	sales := []entity.Sale{
		{ID: "a", SaleDate: "2026-08-28"},
		{ID: "b", SaleDate: "2026-08-27"},
		{ID: "c", SaleDate: "2026-08-28"},
	}
	out := analytics.SalesOn(sales, "2026-08-28")
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID, "conserva el orden de entrada")
	assert.Equal(t, "c", out[1].ID)
}

func TestSummarizeCash(t *testing.T) {
	movements := []entity.CashMovement{
		{Type: entity.MovementIncome, Amount: decimal.NewFromInt(300), MovementDate: "2026-08-28"},
		{Type: entity.MovementIncome, Amount: decimal.NewFromInt(200), MovementDate: "2026-08-28"},
		{Type: entity.MovementExpense, Amount: decimal.NewFromInt(150), MovementDate: "2026-08-28"},
		{Type: entity.MovementIncome, Amount: decimal.NewFromInt(999), MovementDate: "2026-08-27"},
	}
	sum := analytics.SummarizeCash(movements, "2026-08-28")
	assert.Equal(t, "2026-08-28", sum.Date)
	assert.True(t, sum.Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, sum.Expenses.Equal(decimal.NewFromInt(150)))
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(350)))
}

func TestSummarizeCashSinMovimientos(t *testing.T) {
	sum := analytics.SummarizeCash(nil, "2026-08-28")
	assert.True(t, sum.Income.Equal(decimal.Zero))
	assert.True(t, sum.Expenses.Equal(decimal.Zero))
	assert.True(t, sum.Balance.Equal(decimal.Zero))
}
