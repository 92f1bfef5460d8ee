package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de inventario.
const (
	InventoryStatusActive  = "active"
	InventoryStatusDeleted = "deleted" // borrado lógico, nunca se elimina físicamente
)

// Inventory stock actual de un producto: un registro activo por producto.
// Se muta en cada recepción, venta, devolución o ajuste manual; cada mutación
// deja además un InventoryRecord como snapshot auditable.
type Inventory struct {
	ID               string
	ProductID        string
	Quantity         int64
	AcquisitionPrice decimal.Decimal
	Status           string // active | deleted
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
