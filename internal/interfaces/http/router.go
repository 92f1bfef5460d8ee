package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/application/sales"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	InventoryUC   *usecase.InventoryUseCase
	AdjustmentUC  *usecase.AdjustmentUseCase
	StockUC       *usecase.StockUseCase
	TransactionUC *sales.TransactionUseCase
	RefundUC      *sales.RefundUseCase
	InventoryRep  *report.InventoryReportUseCase
	SalesRep      *report.SalesReportUseCase
	SummaryRep    *report.InventorySummaryUseCase
	ExportUC      *report.ExportUseCase
	JWTSecret     string
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

	// Solo backoffice (admin o manager)
	backoffice := RequireRoles(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", backoffice, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", backoffice, productHandler.Update)
	products.Delete("/:id", backoffice, productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", backoffice, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", backoffice, categoryHandler.Update)
	categories.Delete("/:id", backoffice, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", backoffice, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", backoffice, supplierHandler.Update)
	suppliers.Delete("/:id", backoffice, supplierHandler.Delete)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.AdjustmentUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/snapshot", backoffice, inventoryHandler.Snapshot)
	invGroup.Get("/:productId", inventoryHandler.GetByProduct)
	invGroup.Get("/:productId/history", inventoryHandler.History)

	// Adjustments (solo backoffice)
	adjustments := protected.Group("/adjustments", backoffice)
	adjustments.Post("/", inventoryHandler.CreateAdjustment)
	adjustments.Get("/", inventoryHandler.ListAdjustments)

	// Stocks / órdenes de compra (protegido)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Post("/", backoffice, stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/summary", stockHandler.Summary)
	stocks.Post("/:id/deliver", backoffice, stockHandler.Deliver)
	stocks.Post("/:id/cancel", backoffice, stockHandler.Cancel)

	// Transactions y refunds (protegido; cualquier rol autenticado vende)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.RefundUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Delete("/:id", backoffice, transactionHandler.Void)

	refunds := protected.Group("/refunds")
	refunds.Post("/", transactionHandler.CreateRefund)
	refunds.Get("/", transactionHandler.ListRefunds)
	refunds.Get("/:id", transactionHandler.GetRefund)

	// Reports (solo backoffice)
	reports := protected.Group("/reports", backoffice)
	reportHandler := NewReportHandler(deps.InventoryRep, deps.SalesRep, deps.SummaryRep, deps.ExportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/summary", reportHandler.Summary)
	reports.Get("/inventory/xlsx", reportHandler.InventoryXLSX)
	reports.Get("/inventory/movements", reportHandler.Movements)
	reports.Get("/inventory/movements/:productId", reportHandler.ProductMovements)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/pdf", reportHandler.SalesPDF)
}
