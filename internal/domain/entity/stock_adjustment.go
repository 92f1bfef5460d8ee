package entity

import "time"

// StockAdjustment corrección manual de inventario: delta con signo más la
// foto previa/resultante de la cantidad, para auditoría.
type StockAdjustment struct {
	ID               string
	ProductID        string
	Change           int64 // delta con signo: positivo suma, negativo resta
	Reason           AdjustmentReason
	PreviousQuantity int64
	AdjustedQuantity int64
	Note             string
	Date             time.Time
	CreatedBy        string
	CreatedAt        time.Time
}
