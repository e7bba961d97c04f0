package repository

import (
	"context"

	"github.com/fournull/pcsale-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// ListLowStock lista productos activos con stock_quantity <= reorder_level,
	// ordenados por stock ascendente.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
