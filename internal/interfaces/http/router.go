package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SaleUC     *usecase.SaleUseCase
	CashUC     *usecase.CashMovementUseCase
	TransferUC *usecase.BalanceTransferUseCase
	Dashboard  *usecase.DashboardUseCase
	Status     *usecase.StatusUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/range", saleHandler.Range)
	sales.Post("/", saleHandler.Create)

	// Cash movements
	cash := api.Group("/cash-movements")
	cashHandler := NewCashMovementHandler(deps.CashUC)
	cash.Get("/", cashHandler.List)
	cash.Post("/", cashHandler.Create)

	// Balance transfers
	transfers := api.Group("/balance-transfers")
	transferHandler := NewBalanceTransferHandler(deps.TransferUC)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Database status
	statusHandler := NewStatusHandler(deps.Status)
	api.Get("/status", statusHandler.List)
	api.Post("/status/refresh", statusHandler.Refresh)
}
