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
	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/application/sales"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	domaininv "github.com/jhoicas/cafe-pos-api/internal/domain/inventory"
	infrapdf "github.com/jhoicas/cafe-pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cafe-pos-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-pos-api/pkg/config"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios fuera de transacción (lecturas y operaciones simples)
	ticketRepo := postgres.NewTicketRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	ledgerRepo := postgres.NewStockLedgerRepository(pool)
	cxcRepo := postgres.NewCXCRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	expenseRepo := postgres.NewFixedExpenseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de inventario
	names := domaininv.CaseFoldNames{}
	resolver := inventory.NewResolver(log)
	deductUC := inventory.NewDeductUseCase(resolver, names, log)
	ledgerUC := inventory.NewLedgerUseCase(ledgerRepo, names, log)
	alertsUC := inventory.NewAlertsUseCase(menuRepo, recipeRepo, ledgerUC, names, log)

	// Casos de uso
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, deductUC, log)
	orderUC := orders.NewUseCase(txRunner, orderRepo, deductUC, log)
	ticketUC := usecase.NewTicketUseCase(txRunner, ticketRepo)
	recipeUC := usecase.NewRecipeUseCase(txRunner, recipeRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	cxcUC := usecase.NewCXCUseCase(cxcRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	dashboardUC := usecase.NewDashboardUseCase(saleRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	stockReport := infrapdf.NewStockReportGenerator(cfg.App.Name)

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
		Title:    "Cafe POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		TicketUC:     ticketUC,
		RecipeUC:     recipeUC,
		MenuUC:       menuUC,
		CreateSale:   createSaleUC,
		OrderUC:      orderUC,
		LedgerUC:     ledgerUC,
		AlertsUC:     alertsUC,
		CXCUC:        cxcUC,
		ExpenseUC:    expenseUC,
		DashboardUC:  dashboardUC,
		SaleRepo:     saleRepo,
		CustomerRepo: customerRepo,
		StockReport:  stockReport,
		JWTSecret:    cfg.JWT.Secret,
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
