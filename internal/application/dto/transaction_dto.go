package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de venta entrante.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateTransactionRequest entrada para registrar una venta.
type CreateTransactionRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountType  string            `json:"discount_type" validate:"omitempty,oneof=none senior pwd promo"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash gcash card"`
	Cash          decimal.Decimal   `json:"cash"`
}

// TransactionItemResponse una línea de venta persistida.
type TransactionItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	VatAmount   decimal.Decimal `json:"vat_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	VatType     string          `json:"vat_type"`
	IsRefunded  bool            `json:"is_refunded"`
}

// TransactionResponse salida de una venta con sus líneas.
type TransactionResponse struct {
	ID                string                    `json:"id"`
	ReceiptNum        string                    `json:"receipt_num"`
	CashierID         string                    `json:"cashier_id"`
	TotalQty          int64                     `json:"total_qty"`
	GrossAmount       decimal.Decimal           `json:"gross_amount"`
	VatableAmount     decimal.Decimal           `json:"vatable_amount"`
	VatExemptSales    decimal.Decimal           `json:"vat_exempt_sales"`
	VatZeroRatedSales decimal.Decimal           `json:"vat_zero_rated_sales"`
	VatAmount         decimal.Decimal           `json:"vat_amount"`
	TotalDiscount     decimal.Decimal           `json:"total_discount"`
	TotalAmount       decimal.Decimal           `json:"total_amount"`
	PaymentMethod     string                    `json:"payment_method"`
	Cash              decimal.Decimal           `json:"cash"`
	Change            decimal.Decimal           `json:"change"`
	Items             []TransactionItemResponse `json:"items"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// TransactionListResponse listado paginado de ventas.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CreateRefundRequest entrada para devolver una línea de venta.
type CreateRefundRequest struct {
	TransactionItemID string `json:"transaction_item_id" validate:"required,uuid"`
	Quantity          int64  `json:"quantity" validate:"required,min=1"`
	Reason            string `json:"reason" validate:"required"`
}

// RefundResponse salida de una devolución.
type RefundResponse struct {
	ID                string          `json:"id"`
	TransactionItemID string          `json:"transaction_item_id"`
	ProductID         string          `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	RefundPrice       decimal.Decimal `json:"refund_price"`
	Reason            string          `json:"reason"`
	RefundedAt        time.Time       `json:"refunded_at"`
}
