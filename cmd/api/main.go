package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/application/service"
	"github.com/lakshmiplex/canteen-api/internal/config"
	"github.com/lakshmiplex/canteen-api/internal/infrastructure/database"
	"github.com/lakshmiplex/canteen-api/internal/infrastructure/repository"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/handler"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/routes"
	"github.com/lakshmiplex/canteen-api/pkg/document"
	"github.com/lakshmiplex/canteen-api/pkg/printer"
	"github.com/lakshmiplex/canteen-api/pkg/sequence"
	"github.com/lakshmiplex/canteen-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.SyncLogger()
	logger := utils.GetLogger()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db); err != nil {
		logger.Fatal("Failed to seed default data", zap.Error(err))
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Output devices
	devices := make([]printer.Device, 0, len(cfg.Printer.Devices))
	for _, dev := range cfg.Printer.Devices {
		p, err := printer.NewPrinterFromSpec(dev.Spec)
		if err != nil {
			logger.Warn("skipping printer device",
				zap.String("device", dev.Name),
				zap.Error(err))
			continue
		}
		devices = append(devices, printer.Device{Name: dev.Name, Printer: p})
	}
	selector := printer.NewSelector(cfg.Printer.ModelToken)

	// Services
	renderer := service.NewTextRenderer(cfg.Store)
	docStore := document.NewStore(cfg.Documents.Dir)
	printerService := service.NewPrinterService(devices, selector, docStore, logger)
	billNumbers := sequence.NewCounter(0)
	billingService := service.NewBillingService(productRepo, purchaseRepo, billNumbers, renderer, printerService, logger)
	statsService := service.NewStatsService(categoryRepo, productRepo, purchaseRepo, renderer, printerService, logger)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, purchaseRepo)

	// Handlers
	handlers := &routes.Handlers{
		Stats:   handler.NewStatsHandler(statsService),
		Billing: handler.NewBillingHandler(billingService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: idempotencyRepo,
	})

	logger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("documents_dir", docStore.Dir()),
		zap.Int("printer_devices", len(devices)))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
