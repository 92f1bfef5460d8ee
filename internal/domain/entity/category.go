package entity

import "time"

// Category agrupa productos para los reportes de ventas por categoría.
type Category struct {
	ID          string
	Name        string
	Description string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
