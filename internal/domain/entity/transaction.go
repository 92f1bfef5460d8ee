package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento y medios de pago aceptados en caja.
const (
	DiscountNone   = "none"
	DiscountSenior = "senior"
	DiscountPWD    = "pwd"
	DiscountPromo  = "promo"

	PaymentCash  = "cash"
	PaymentGCash = "gcash"
	PaymentCard  = "card"
)

// Transaction venta registrada en caja. Inmutable una vez creada, salvo el
// borrado lógico (IsDeleted). Los montos desglosan el IVA filipino del 12%.
type Transaction struct {
	ID                string
	ReceiptNum        string // número de recibo único, formato FNS-#########
	CashierID         string
	TotalQty          int64
	GrossAmount       decimal.Decimal
	VatableAmount     decimal.Decimal
	VatExemptSales    decimal.Decimal
	VatZeroRatedSales decimal.Decimal
	VatAmount         decimal.Decimal
	TotalAmount       decimal.Decimal
	TotalDiscount     decimal.Decimal
	DiscountType      string
	PaymentMethod     string
	Cash              decimal.Decimal
	Change            decimal.Decimal
	IsDeleted         bool
	CreatedAt         time.Time
}
