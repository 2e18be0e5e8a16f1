package dto

import "github.com/shopspring/decimal"

// CashSummaryDTO resumen de caja para una fecha (filtro explícito u hoy).
type CashSummaryDTO struct {
	Date     string          `json:"date"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// DashboardSummaryDTO resumen del panel: inventario, ventas y caja del día.
type DashboardSummaryDTO struct {
	TotalProducts    int             `json:"total_products"`
	LowStockProducts int             `json:"low_stock_products"`
	TotalSalesAmount decimal.Decimal `json:"total_sales_amount"`
	TodaySalesCount  int             `json:"today_sales_count"`
	TodayRevenue     decimal.Decimal `json:"today_revenue"`
	Cash             CashSummaryDTO  `json:"cash"`
	UsingFallback    bool            `json:"using_fallback"`
}
