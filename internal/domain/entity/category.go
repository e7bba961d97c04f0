package entity

import "time"

// Category agrupa productos del catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
