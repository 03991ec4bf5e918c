package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cyndie1416/RetailPOS/internal/config"
	authhandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/auth"
	backuphandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/backup"
	checkouthandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/checkout"
	customerhandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/customer"
	orderhandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/order"
	producthandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/product"
	reporthandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/report"
	settingshandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/settings"
	supplierhandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/supplier"
	userhandler "github.com/Cyndie1416/RetailPOS/internal/delivery/http/handler/user"
	"github.com/Cyndie1416/RetailPOS/internal/delivery/middleware"
	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/snapshot"
	authuc "github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
	cataloguc "github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	ledgeruc "github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	orderuc "github.com/Cyndie1416/RetailPOS/internal/usecase/order"
	reportuc "github.com/Cyndie1416/RetailPOS/internal/usecase/report"
	saleuc "github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
	settingsuc "github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
	supplieruc "github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

// Stores are the shared in-memory stores the routes operate on.
type Stores struct {
	Catalog   *memory.CatalogStore
	Ledger    *memory.LedgerStore
	Sales     *memory.SaleStore
	Suppliers *memory.SupplierStore
	Orders    *memory.OrderStore
	Users     *memory.UserStore
	Settings  *memory.SettingsStore
	Snapshot  *snapshot.Service
}

func RegisterRoutes(app *fiber.App, cfg config.Config, st *Stores) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	loginUC := authuc.NewLoginUsecase(st.Users, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	loginH := authhandler.NewLoginHandler(loginUC)
	api.Post("/login", loginH.Handle)

	// Everything below needs a valid token.
	authed := api.Group("", middleware.RequireAuth(middleware.JWTConfig{
		Secret: cfg.JWTSecret,
	}))

	authed.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   c.Locals("user_id"),
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		})
	})

	// Usecase wiring
	catalogUC := cataloguc.New(st.Catalog)
	ledgerUC := ledgeruc.New(st.Ledger)
	saleUC := saleuc.New(st.Catalog, st.Ledger, st.Sales)
	supplierUC := supplieruc.New(st.Suppliers)
	orderUC := orderuc.New(st.Suppliers, st.Catalog, st.Orders)
	userUC := authuc.NewUserUsecase(st.Users)
	settingsUC := settingsuc.New(st.Settings)
	reportUC := reportuc.New(st.Catalog, st.Ledger, st.Sales)

	productH := producthandler.New(catalogUC)
	customerH := customerhandler.New(ledgerUC)
	checkoutH := checkouthandler.New(saleUC)
	supplierH := supplierhandler.New(supplierUC)
	orderH := orderhandler.New(orderUC)
	userH := userhandler.New(userUC)
	settingsH := settingshandler.New(settingsUC)
	reportH := reporthandler.New(reportUC)
	backupH := backuphandler.New(st.Snapshot)

	// Cashier and owner
	authed.Get("/products", productH.List)
	authed.Get("/products/:id", productH.Get)
	authed.Post("/checkout", checkoutH.Checkout)
	authed.Get("/sales", checkoutH.List)
	authed.Get("/sales/:id", checkoutH.Get)

	authed.Get("/customers", customerH.List)
	authed.Get("/customers/:id", customerH.Get)
	authed.Post("/customers", customerH.Create)
	authed.Patch("/customers/:id", customerH.Update)
	authed.Post("/customers/:id/charges", customerH.AddCharge)
	authed.Post("/customers/:id/payments", customerH.RecordPayment)

	// Owner only
	owner := authed.Group("", middleware.RequireRole(authuc.RoleOwner))

	owner.Post("/products", productH.Create)
	owner.Patch("/products/:id", productH.Update)
	owner.Delete("/products/:id", productH.Delete)
	owner.Post("/products/:id/restock", productH.Restock)
	owner.Get("/products/:id/restocks", productH.RestockHistory)

	owner.Delete("/customers/:id", customerH.Delete)

	owner.Get("/suppliers", supplierH.List)
	owner.Get("/suppliers/:id", supplierH.Get)
	owner.Post("/suppliers", supplierH.Create)
	owner.Patch("/suppliers/:id", supplierH.Update)
	owner.Delete("/suppliers/:id", supplierH.Delete)

	owner.Post("/suppliers/:id/orders", orderH.Create)
	owner.Get("/orders", orderH.List)
	owner.Get("/orders/:id", orderH.Get)
	owner.Patch("/orders/:id/status", orderH.SetStatus)

	owner.Get("/users", userH.List)
	owner.Post("/users", userH.Create)
	owner.Patch("/users/:id", userH.Update)
	owner.Patch("/users/:id/status", userH.SetStatus)

	owner.Get("/reports", reportH.Summary)
	owner.Get("/reports/low-stock", reportH.LowStock)
	owner.Get("/reports/expiring", reportH.Expiring)
	owner.Get("/reports/valuation", reportH.Valuation)
	owner.Get("/reports/recent-sales", reportH.RecentSales)

	owner.Get("/settings", settingsH.Get)
	owner.Put("/settings", settingsH.Update)

	owner.Get("/export", backupH.Export)
	owner.Post("/import", backupH.Import)
}
