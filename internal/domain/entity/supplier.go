package entity

import "time"

// Supplier proveedor de órdenes de compra (Stock).
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Address   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
