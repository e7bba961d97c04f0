package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fournull/pcsale-api/internal/application/auth"
	"github.com/fournull/pcsale-api/internal/application/inventory"
	"github.com/fournull/pcsale-api/internal/application/reports"
	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/application/usecase"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/infrastructure/receipt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PostSaleUC  *sales.PostSaleUseCase
	SaleQueryUC *sales.SaleQueryUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	LookupUC    *usecase.LookupUseCase
	StockUC     *inventory.StockUseCase
	ReportsUC   *reports.ReportsUseCase
	AuthUC      *auth.UseCase
	Renderer    *receipt.Renderer
	PDFGen      sales.ReceiptPDFGenerator
	Store       sales.StoreInfo
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; registro y listado solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/users", RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	// Sales (protegido): registrar vende cualquier rol; consultar también
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.PostSaleUC, deps.SaleQueryUC, deps.Renderer, deps.PDFGen, deps.Store)
	salesGroup.Post("/", saleHandler.Post)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/invoice/:invoice_no", saleHandler.GetByInvoice)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.ReceiptPDF)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Products (protegido; altas y cambios solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/low-stock", inventoryHandler.LowStock)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Get("/:id", productHandler.GetByID)

	// Inventory (protegido; ajustes solo admin)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/adjust", RequireRole(entity.RoleAdmin), inventoryHandler.Adjust)
	invGroup.Get("/stock/:product_id", inventoryHandler.StockLevel)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/sales", reportHandler.SalesSeries)
	reportsGroup.Get("/summary/today", reportHandler.SummaryToday)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Lookups (protegido; altas solo admin)
	lookupHandler := NewLookupHandler(deps.LookupUC)
	protected.Post("/categories", RequireRole(entity.RoleAdmin), lookupHandler.CreateCategory)
	protected.Get("/categories", lookupHandler.ListCategories)
	protected.Post("/suppliers", RequireRole(entity.RoleAdmin), lookupHandler.CreateSupplier)
	protected.Get("/suppliers", lookupHandler.ListSuppliers)
}
