package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ShelfUC     *usecase.ShelfUseCase
	MutationUC  *inventory.MutationUseCase
	SyncUC      *inventory.SyncUseCase
	CriticalUC  *inventory.CriticalUseCase
	OrdersUC    *marketplace.OrdersUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DashboardUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/damaged", productHandler.ListDamaged)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/logs", productHandler.History)
	products.Put("/:id/min-stock", productHandler.UpdateMinStock)

	// Shelves (protegido; borrar solo admin)
	shelves := protected.Group("/shelves")
	shelfHandler := NewShelfHandler(deps.ShelfUC)
	shelves.Post("/", shelfHandler.Create)
	shelves.Get("/", shelfHandler.List)
	shelves.Get("/:id/products", shelfHandler.Products)
	shelves.Delete("/:id", RequireRole(entity.RoleAdmin), shelfHandler.Delete)

	// Inventory (protegido): mutaciones de stock y diario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MutationUC, deps.ProductUC, deps.DashboardUC)
	invGroup.Post("/stock-in", inventoryHandler.StockIn)
	invGroup.Post("/stock-out", inventoryHandler.StockOut)
	invGroup.Post("/move", inventoryHandler.Move)
	invGroup.Post("/damaged-in", inventoryHandler.DamagedIn)
	invGroup.Post("/damaged-out", inventoryHandler.DamagedOut)
	invGroup.Get("/logs", inventoryHandler.RecentActivity)

	// Marketplace (protegido; sincronizar solo admin)
	mk := protected.Group("/marketplace")
	marketplaceHandler := NewMarketplaceHandler(deps.SyncUC, deps.CriticalUC, deps.OrdersUC)
	mk.Get("/products", marketplaceHandler.Products)
	mk.Post("/sync", RequireRole(entity.RoleAdmin), marketplaceHandler.Sync)
	mk.Get("/critical", marketplaceHandler.Critical)
	mk.Get("/orders", marketplaceHandler.Orders)
	mk.Get("/orders/:orderNumber", marketplaceHandler.OrderByNumber)
	mk.Get("/claims", marketplaceHandler.Claims)
	mk.Get("/returns/extended", marketplaceHandler.ExtendedReturns)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Calculator (protegido)
	calculatorHandler := NewCalculatorHandler()
	protected.Post("/calculator/profit", calculatorHandler.Profit)
}
