package entity

import "time"

// Customer representa un cliente registrado (opcional en una venta).
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
