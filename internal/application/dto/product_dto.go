package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	CategoryID        string          `json:"category_id" validate:"required,uuid"`
	SupplierID        string          `json:"supplier_id"`
	Price             decimal.Decimal `json:"price"`
	AcquisitionPrice  decimal.Decimal `json:"acquisition_price"`
	VatType           string          `json:"vat_type" validate:"required,oneof=vatable vat_exempt zero_rated"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	InitialQuantity   int64           `json:"initial_quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no cambian.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	CategoryID        *string          `json:"category_id"`
	SupplierID        *string          `json:"supplier_id"`
	Price             *decimal.Decimal `json:"price"`
	AcquisitionPrice  *decimal.Decimal `json:"acquisition_price"`
	VatType           *string          `json:"vat_type" validate:"omitempty,oneof=vatable vat_exempt zero_rated"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id"`
	Price             decimal.Decimal `json:"price"`
	AcquisitionPrice  decimal.Decimal `json:"acquisition_price"`
	VatType           string          `json:"vat_type"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
