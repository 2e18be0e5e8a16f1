package usecase

import (
	"time"

	"github.com/IIJPRII/VeggieBurger/internal/application/analytics"
	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
)

// DashboardUseCase arma el resumen del panel a partir de los espejos en
// memoria; nunca consulta el backend.
type DashboardUseCase struct {
	products *repository.ProductRepository
	sales    *repository.SaleRepository
	cash     *repository.CashMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products *repository.ProductRepository,
	sales *repository.SaleRepository,
	cash *repository.CashMovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, sales: sales, cash: cash}
}

// Summary calcula el resumen para filterDate (vacío = hoy). El bloque de
// "ventas de hoy" y el resumen de caja usan la fecha del filtro; los totales
// de inventario y de ventas cubren todo el espejo.
func (uc *DashboardUseCase) Summary(filterDate string) *dto.DashboardSummaryDTO {
	date := filterDate
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	products := uc.products.Items()
	sales := uc.sales.Items()
	movements := uc.cash.Items()

	daySales := analytics.SalesOn(sales, date)
	cashSummary := analytics.SummarizeCash(movements, date)

	return &dto.DashboardSummaryDTO{
		TotalProducts:    len(products),
		LowStockProducts: analytics.LowStockCount(products),
		TotalSalesAmount: analytics.TotalSalesAmount(sales),
		TodaySalesCount:  len(daySales),
		TodayRevenue:     analytics.TotalSalesAmount(daySales),
		Cash: dto.CashSummaryDTO{
			Date:     cashSummary.Date,
			Income:   cashSummary.Income,
			Expenses: cashSummary.Expenses,
			Balance:  cashSummary.Balance,
		},
		UsingFallback: uc.products.UsingFallback() || uc.sales.UsingFallback() || uc.cash.UsingFallback(),
	}
}
