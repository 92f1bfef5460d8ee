package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord snapshot append-only del inventario de un producto.
// Nunca se modifica después de creado: es la fuente de verdad para
// "stock disponible a la fecha X" (último registro con DateRecorded <= corte).
type InventoryRecord struct {
	ID               string
	ProductID        string
	InventoryID      string
	Quantity         int64
	PrevQuantity     int64
	AcquisitionPrice decimal.Decimal
	DateRecorded     time.Time
}
