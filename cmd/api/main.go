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

	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/application/sales"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	infraexcel "github.com/jhoicas/pos-backoffice/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/pos-backoffice/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-backoffice/internal/interfaces/http"
	"github.com/jhoicas/pos-backoffice/pkg/config"
	"github.com/jhoicas/pos-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("tz", cfg.Report.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	recordRepo := postgres.NewInventoryRecordRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	refundRepo := postgres.NewRefundRepository(pool)
	adjustmentRepo := postgres.NewStockAdjustmentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, recordRepo, productRepo, cfg.Report.LowStockThreshold)
	adjustmentUC := usecase.NewAdjustmentUseCase(adjustmentRepo, txRunner)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, txRunner, cfg.Report.Timezone)
	transactionUC := sales.NewTransactionUseCase(transactionRepo, txRunner)
	refundUC := sales.NewRefundUseCase(refundRepo, txRunner)

	inventoryRepUC := report.NewInventoryReportUseCase(reportRepo, cfg.Report.Timezone, cfg.Report.LowStockThreshold)
	salesRepUC := report.NewSalesReportUseCase(reportRepo, cfg.Report.Timezone)
	summaryRepUC := report.NewInventorySummaryUseCase(reportRepo, cfg.Report.Timezone, cfg.Report.LowStockThreshold)
	exportUC := report.NewExportUseCase(
		salesRepUC, summaryRepUC,
		infrapdf.NewMarotoSalesReport(), infraexcel.NewInventoryWorkbook(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		SupplierUC:    supplierUC,
		InventoryUC:   inventoryUC,
		AdjustmentUC:  adjustmentUC,
		StockUC:       stockUC,
		TransactionUC: transactionUC,
		RefundUC:      refundUC,
		InventoryRep:  inventoryRepUC,
		SalesRep:      salesRepUC,
		SummaryRep:    summaryRepUC,
		ExportUC:      exportUC,
		JWTSecret:     cfg.JWT.Secret,
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
}
