package repository

import (
	"context"

	"github.com/fournull/pcsale-api/internal/domain/entity"
)

// CategoryRepository catálogo de categorías de producto.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
}

// SupplierRepository catálogo de proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context) ([]*entity.Supplier, error)
}
