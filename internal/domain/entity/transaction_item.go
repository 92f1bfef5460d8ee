package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem línea de una venta (muchas líneas por Transaction).
// NetAmount es el monto sin IVA; TotalAmount = Price × Quantity.
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Quantity      int64
	Price         decimal.Decimal
	NetAmount     decimal.Decimal
	VatAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	VatType       string // vatable | vat_exempt | zero_rated
	IsRefunded    bool
	IsDeleted     bool
	CreatedAt     time.Time
}
