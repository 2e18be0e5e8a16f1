package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
	"github.com/IIJPRII/VeggieBurger/internal/infrastructure/postgres"
	httpRouter "github.com/IIJPRII/VeggieBurger/internal/interfaces/http"
	"github.com/IIJPRII/VeggieBurger/pkg/config"
	"github.com/IIJPRII/VeggieBurger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Sin backend la aplicación arranca igual: los repositorios entran en
	// modo fallback y el reintento manual queda disponible vía /api/status.
	var querier postgres.Querier
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL no disponible, arrancando en modo fallback")
		querier = postgres.Unavailable{Err: err}
	} else {
		defer pool.Close()
		querier = pool
	}

	productRepo := repository.NewProductRepository(postgres.NewProductGateway(querier), log)
	saleRepo := repository.NewSaleRepository(postgres.NewSaleGateway(querier), log)
	cashRepo := repository.NewCashMovementRepository(postgres.NewCashMovementGateway(querier), log)
	transferRepo := repository.NewBalanceTransferRepository(postgres.NewBalanceTransferGateway(querier), log)

	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(productRepo, saleRepo, cashRepo, log)
	cashUC := usecase.NewCashMovementUseCase(cashRepo)
	transferUC := usecase.NewBalanceTransferUseCase(transferRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, saleRepo, cashRepo)
	statusUC := usecase.NewStatusUseCase(productRepo, saleRepo, cashRepo, transferRepo)

	// Fetch inicial de los cuatro espejos. Un error aquí no es fatal: queda
	// reflejado en el estado de cada repositorio.
	if err := statusUC.RefreshAll(ctx); err != nil {
		log.Warn().Err(err).Msg("fetch inicial con errores")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VeggieBurger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SaleUC:     saleUC,
		CashUC:     cashUC,
		TransferUC: transferUC,
		Dashboard:  dashboardUC,
		Status:     statusUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
