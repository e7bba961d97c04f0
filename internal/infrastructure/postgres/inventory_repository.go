package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo ajustes atómicos de stock (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// DecrementStock descuenta qty unidades con guarda de no-negatividad en el
// mismo UPDATE: si el stock no alcanza, la fila no se toca y distinguimos
// después entre producto inexistente y stock insuficiente.
func (r *InventoryRepo) DecrementStock(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: cantidad a descontar debe ser positiva", domain.ErrInvalidInput)
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
			return fmt.Errorf("check product: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, productID)
	}
	return nil
}

// IncrementStock suma qty unidades (reposición o devolución).
func (r *InventoryRepo) IncrementStock(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: cantidad a reponer debe ser positiva", domain.ErrInvalidInput)
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return nil
}

// GetStockLevel devuelve el stock actual del producto.
func (r *InventoryRepo) GetStockLevel(ctx context.Context, productID string) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		return 0, fmt.Errorf("get stock level: %w", err)
	}
	return stock, nil
}
