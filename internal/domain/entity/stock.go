package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. delivered y cancelled son terminales:
// la transición ocurre exactamente una vez.
const (
	StockStatusPending   = "pending"
	StockStatusDelivered = "delivered"
	StockStatusCancelled = "cancelled"
)

// Stock orden de compra / entrega de mercadería de un proveedor.
// DeliveryDate es la fecha programada; DeliveredDate la real (nil si no llegó).
type Stock struct {
	ID                string
	ProductID         string
	SupplierID        string
	SupplierName      string
	OrderQuantity     int64
	DeliveredQuantity int64
	AcquisitionPrice  decimal.Decimal
	DeliveryDate      time.Time
	DeliveredDate     *time.Time
	Status            string // pending | delivered | cancelled
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
