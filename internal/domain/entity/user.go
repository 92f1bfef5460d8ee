package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User usuario del back office (admin, gerente o cajero).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | manager | cashier
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
