package repository

import "context"

// InventoryRepository puerto de ajuste de stock. Los ajustes son relativos y
// se evalúan en la capa de almacenamiento (stock = stock ± n), nunca como
// read-modify-write desde memoria de la aplicación.
type InventoryRepository interface {
	// DecrementStock descuenta qty unidades de forma atómica. Retorna
	// domain.ErrInsufficientStock si el stock disponible es menor que qty
	// (la venta completa debe abortar) y domain.ErrNotFound si el producto
	// no existe.
	DecrementStock(ctx context.Context, productID string, qty int) error
	// IncrementStock suma qty unidades (reposición).
	IncrementStock(ctx context.Context, productID string, qty int) error
	// GetStockLevel devuelve el stock actual del producto.
	GetStockLevel(ctx context.Context, productID string) (int, error)
}
