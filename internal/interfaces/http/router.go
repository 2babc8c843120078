package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/guard"
	"github.com/jhoicas/plywood-inventory/internal/application/report"
	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/session"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *session.Registry
	CookieName   string
	EmployeeCode string

	PlywoodUC     *usecase.PlywoodUseCase
	SupplierUC    *usecase.SupplierUseCase
	TransactionUC *usecase.TransactionUseCase
	DashboardUC   *screens.DashboardUseCase
	InventoryUC   *screens.InventoryUseCase
	CatalogUC     *screens.CatalogUseCase
	ReportUC      *report.UseCase
}

// Router registra las rutas visibles del navegador y la API JSON.
// Debe llamarse después de las rutas sin sesión (health, docs): termina con el 404 genérico.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Sessions, deps.CookieName))

	employee := RequireGuard(guard.Employee)
	customer := RequireGuard(guard.Customer)

	pages := NewPageHandler()
	authHandler := NewAuthHandler(deps.EmployeeCode)
	screenHandler := NewScreenHandler(deps.DashboardUC, deps.InventoryUC, deps.CatalogUC)

	// Público
	app.Get("/", pages.Home)
	app.Get("/login", pages.Redirect("/employee-login"))
	app.Get("/register", pages.Redirect("/employee-register"))

	app.Get("/employee-login", pages.Page("Employee Login"))
	app.Post("/employee-login", authHandler.EmployeeLogin)
	app.Get("/employee-register", pages.Page("Employee Registration"))
	app.Post("/employee-register", authHandler.EmployeeRegister)
	app.Get("/customer-login", pages.Page("Customer Login"))
	app.Post("/customer-login", authHandler.CustomerLogin)
	app.Get("/customer-register", pages.Page("Customer Registration"))
	app.Post("/customer-register", authHandler.CustomerRegister)
	app.Post("/logout", authHandler.Logout)

	// Empleados
	app.Get("/dashboard", employee, screenHandler.Dashboard)
	app.Get("/inventory", employee, screenHandler.Inventory)
	app.Post("/inventory", employee, screenHandler.AddSheet)
	app.Get("/reports/inventory.pdf", employee, NewReportHandler(deps.ReportUC).InventoryPDF)
	for path, title := range map[string]string{
		"/search":       "Search",
		"/reports":      "Reports",
		"/transactions": "Transactions",
		"/suppliers":    "Suppliers",
		"/settings":     "Settings",
	} {
		app.Get(path, employee, pages.UnderConstruction(title))
	}

	// Clientes
	app.Get("/customer/catalog", customer, screenHandler.Catalog)
	app.Get("/customer/cart", customer, screenHandler.Cart)
	app.Post("/customer/cart", customer, screenHandler.AddToCart)
	app.Get("/customer/orders", customer, pages.UnderConstruction("Orders"))
	app.Get("/customer/account", customer, pages.UnderConstruction("Account"))

	// API JSON
	api := app.Group("/api")
	api.Get("/session", authHandler.Session)

	plywood := api.Group("/plywood", employee)
	plywoodHandler := NewPlywoodHandler(deps.PlywoodUC)
	plywood.Get("/", plywoodHandler.List)
	plywood.Post("/", plywoodHandler.Create)
	plywood.Put("/:id", plywoodHandler.Update)
	plywood.Delete("/:id", plywoodHandler.Delete)

	suppliers := api.Group("/suppliers", employee)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	transactions := api.Group("/transactions", employee)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	app.Use(pages.NotFound)
}
