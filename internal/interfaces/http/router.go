package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/application/sales"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	TicketUC     *usecase.TicketUseCase
	RecipeUC     *usecase.RecipeUseCase
	MenuUC       *usecase.MenuUseCase
	CreateSale   *sales.CreateSaleUseCase
	OrderUC      *orders.UseCase
	LedgerUC     *inventory.LedgerUseCase
	AlertsUC     *inventory.AlertsUseCase
	CXCUC        *usecase.CXCUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	DashboardUC  *usecase.DashboardUseCase
	SaleRepo     repository.SaleRepository
	CustomerRepo repository.CustomerRepository
	StockReport  *pdf.StockReportGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo administración)
	users := protected.Group("/users", RequireRole(entity.RoleAdministrador))
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Delete("/:id", authHandler.DeleteUser)

	// Tickets de compra
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Put("/:id/breakdown", ticketHandler.Breakdown)
	tickets.Get("/:id/items", ticketHandler.ListItems)
	tickets.Delete("/:id", RequireRole(entity.RoleAdministrador, entity.RoleGerencia), ticketHandler.Delete)

	// Recetas
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", RequireRole(entity.RoleAdministrador, entity.RoleGerencia), recipeHandler.Delete)

	// Menú
	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/", menuHandler.Create)
	menu.Get("/", menuHandler.List)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", RequireRole(entity.RoleAdministrador, entity.RoleGerencia), menuHandler.Delete)

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleRepo)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Delete("/:id", RequireRole(entity.RoleAdministrador, entity.RoleGerencia), saleHandler.Delete)

	// Pedidos
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/latest", orderHandler.Latest)
	ordersGroup.Get("/:id/items", orderHandler.ListItems)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)

	// Inventario (lecturas agregadas)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.AlertsUC, deps.StockReport)
	invGroup.Get("/summary", inventoryHandler.Summary)
	invGroup.Get("/alerts", inventoryHandler.Alerts)
	invGroup.Get("/report.pdf", inventoryHandler.Report)

	// Cuentas por cobrar
	cxcGroup := protected.Group("/cxc")
	cxcHandler := NewCXCHandler(deps.CXCUC)
	cxcGroup.Post("/", cxcHandler.Create)
	cxcGroup.Get("/", cxcHandler.List)
	cxcGroup.Put("/:id/pay", cxcHandler.MarkPaid)

	// Gastos fijos
	expenses := protected.Group("/expenses", RequireRole(entity.RoleAdministrador, entity.RoleGerencia))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerRepo)
	customers.Get("/", customerHandler.List)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/top-products", dashboardHandler.TopProducts)
}
