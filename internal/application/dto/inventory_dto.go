package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryResponse stock vigente de un producto.
// StockStatus se deriva contra el umbral del producto:
// out_of_stock | low_stock | in_stock.
type InventoryResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	SKU              string          `json:"sku"`
	Quantity         int64           `json:"quantity"`
	AcquisitionPrice decimal.Decimal `json:"acquisition_price"`
	StockStatus      string          `json:"stock_status"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InventoryListResponse listado paginado de inventario.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// InventoryRecordResponse una foto del historial de inventario.
type InventoryRecordResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Quantity         int64           `json:"quantity"`
	PrevQuantity     int64           `json:"prev_quantity"`
	AcquisitionPrice decimal.Decimal `json:"acquisition_price"`
	DateRecorded     time.Time       `json:"date_recorded"`
}

// CreateAdjustmentRequest entrada para un ajuste manual de inventario.
// Change es el delta con signo; Reason pertenece al conjunto cerrado de
// razones de ajuste.
type CreateAdjustmentRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Change    int64  `json:"change" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	Note      string `json:"note"`
}

// AdjustmentResponse salida de un ajuste manual.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	Change           int64     `json:"change"`
	Reason           string    `json:"reason"`
	PreviousQuantity int64     `json:"previous_quantity"`
	AdjustedQuantity int64     `json:"adjusted_quantity"`
	Note             string    `json:"note"`
	Date             time.Time `json:"date"`
	CreatedBy        string    `json:"created_by"`
}
