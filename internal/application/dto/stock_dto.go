package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest entrada para registrar una orden de compra.
type CreateStockRequest struct {
	ProductID        string          `json:"product_id" validate:"required,uuid"`
	SupplierID       string          `json:"supplier_id" validate:"required,uuid"`
	OrderQuantity    int64           `json:"order_quantity" validate:"required,min=1"`
	AcquisitionPrice decimal.Decimal `json:"acquisition_price"`
	DeliveryDate     time.Time       `json:"delivery_date" validate:"required"`
}

// DeliverStockRequest entrada para marcar una orden como entregada.
// Si DeliveredQuantity es cero se asume la cantidad pedida completa.
type DeliverStockRequest struct {
	DeliveredQuantity int64      `json:"delivered_quantity" validate:"min=0"`
	DeliveredDate     *time.Time `json:"delivered_date"`
}

// StockResponse salida de una orden de compra.
type StockResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SupplierID        string          `json:"supplier_id"`
	SupplierName      string          `json:"supplier_name"`
	OrderQuantity     int64           `json:"order_quantity"`
	DeliveredQuantity int64           `json:"delivered_quantity"`
	AcquisitionPrice  decimal.Decimal `json:"acquisition_price"`
	DeliveryDate      time.Time       `json:"delivery_date"`
	DeliveredDate     *time.Time      `json:"delivered_date,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// StockListResponse listado paginado de órdenes.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderSummaryRow resumen semanal de órdenes (lunes a domingo).
type OrderSummaryRow struct {
	WeekStart    string          `json:"week_start"` // YYYY-MM-DD, lunes
	WeekEnd      string          `json:"week_end"`   // YYYY-MM-DD, domingo
	OrderCount   int64           `json:"order_count"`
	TotalOrdered int64           `json:"total_ordered"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}
