package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/application/inventory"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStock struct {
	levels map[string]int
}

var _ repository.InventoryRepository = (*fakeStock)(nil)

func (f *fakeStock) DecrementStock(_ context.Context, productID string, qty int) error {
	level, ok := f.levels[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if level < qty {
		return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, productID)
	}
	f.levels[productID] = level - qty
	return nil
}

func (f *fakeStock) IncrementStock(_ context.Context, productID string, qty int) error {
	if _, ok := f.levels[productID]; !ok {
		return domain.ErrNotFound
	}
	f.levels[productID] += qty
	return nil
}

func (f *fakeStock) GetStockLevel(_ context.Context, productID string) (int, error) {
	level, ok := f.levels[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return level, nil
}

type fakeProducts struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProducts)(nil)

func (f *fakeProducts) Create(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProducts) Update(_ context.Context, _ *entity.Product) error { return nil }
func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}
func (f *fakeProducts) GetByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if p.Status == entity.ProductActive && p.StockQuantity <= p.ReorderLevel {
			out = append(out, p)
		}
	}
	return out, nil
}

func newStockUC() (*inventory.StockUseCase, *fakeStock) {
	stock := &fakeStock{levels: map[string]int{"p1": 5}}
	products := &fakeProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", Barcode: "100", Name: "Cable HDMI", Status: entity.ProductActive, StockQuantity: 5, ReorderLevel: 2},
	}}
	return inventory.NewStockUseCase(stock, products), stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_Reposicion(t *testing.T) {
	uc, stock := newStockUC()
	err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p1", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, stock.levels["p1"])
}

func TestAdjust_DescuentoNegativo(t *testing.T) {
	uc, stock := newStockUC()
	err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p1", Quantity: -3})
	require.NoError(t, err)
	assert.Equal(t, 2, stock.levels["p1"])
}

func TestAdjust_DescuentoBajoStock(t *testing.T) {
	uc, stock := newStockUC()
	err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p1", Quantity: -9})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock),
		"el ajuste negativo no puede dejar stock negativo")
	assert.Equal(t, 5, stock.levels["p1"], "el stock no debe tocarse")
}

func TestAdjust_CantidadCero(t *testing.T) {
	uc, _ := newStockUC()
	err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p1", Quantity: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _ := newStockUC()
	err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "nope", Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLowStock_ListaProductosEnReorden(t *testing.T) {
	stock := &fakeStock{levels: map[string]int{}}
	products := &fakeProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Cable HDMI", Status: entity.ProductActive, StockQuantity: 1, ReorderLevel: 2},
		"p2": {ID: "p2", Name: "Monitor", Status: entity.ProductActive, StockQuantity: 9, ReorderLevel: 2},
	}}
	uc := inventory.NewStockUseCase(stock, products)

	list, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cable HDMI", list[0].Name)
}
