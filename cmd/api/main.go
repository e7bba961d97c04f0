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

	"github.com/fournull/pcsale-api/internal/application/auth"
	appinventory "github.com/fournull/pcsale-api/internal/application/inventory"
	"github.com/fournull/pcsale-api/internal/application/reports"
	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/application/usecase"
	infrapdf "github.com/fournull/pcsale-api/internal/infrastructure/pdf"
	"github.com/fournull/pcsale-api/internal/infrastructure/postgres"
	"github.com/fournull/pcsale-api/internal/infrastructure/receipt"
	httpRouter "github.com/fournull/pcsale-api/internal/interfaces/http"
	"github.com/fournull/pcsale-api/pkg/config"
	"github.com/fournull/pcsale-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	postSaleUC := sales.NewPostSaleUseCase(txRunner, productRepo)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	lookupUC := usecase.NewLookupUseCase(categoryRepo, supplierRepo)
	stockUC := appinventory.NewStockUseCase(inventoryRepo, productRepo)
	reportsUC := reports.NewReportsUseCase(reportRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	store := sales.StoreInfo{
		Name:    cfg.Store.Name,
		Address: cfg.Store.Address,
		Phone:   cfg.Store.Phone,
	}
	renderer := receipt.NewRenderer()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PostSaleUC:  postSaleUC,
		SaleQueryUC: saleQueryUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		LookupUC:    lookupUC,
		StockUC:     stockUC,
		ReportsUC:   reportsUC,
		AuthUC:      authUC,
		Renderer:    renderer,
		PDFGen:      pdfGenerator,
		Store:       store,
		JWTSecret:   cfg.JWT.Secret,
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
