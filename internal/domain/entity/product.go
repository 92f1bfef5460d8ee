package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive  = "active"
	ProductStatusDeleted = "deleted" // borrado lógico
)

// Tipos de IVA Filipinas: gravado 12%, exento o tasa cero.
const (
	VatTypeVatable   = "vatable"
	VatTypeExempt    = "vat_exempt"
	VatTypeZeroRated = "zero_rated"
)

// Product representa un producto o SKU de la tienda.
// AcquisitionPrice es el costo de adquisición vigente; Price el precio de venta.
// El stock NO vive aquí: se mantiene en Inventory y su historial en InventoryRecord.
type Product struct {
	ID                string
	SKU               string // código único
	Name              string
	Description       string
	CategoryID        string
	SupplierID        string
	Price             decimal.Decimal // precio de venta
	AcquisitionPrice  decimal.Decimal // costo de adquisición
	VatType           string          // vatable | vat_exempt | zero_rated
	LowStockThreshold int64
	Status            string // active | deleted
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
