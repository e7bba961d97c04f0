package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (cajero o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, cashier
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
