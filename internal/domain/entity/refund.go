package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund devolución de un ítem vendido. Reason pertenece a la taxonomía
// cerrada de AdjustmentReason; solo "customer request" regresa unidades
// al stock vendible.
type Refund struct {
	ID                string
	TransactionItemID string
	ProductID         string
	Quantity          int64
	RefundPrice       decimal.Decimal
	Reason            AdjustmentReason
	RefundedAt        time.Time
	IsDeleted         bool
	CreatedAt         time.Time
}
