package inventory

import (
	"context"
	"fmt"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// StockUseCase ajustes manuales de inventario (reposición, merma) y consulta
// de productos bajo el nivel de reorden. La venta NO pasa por aquí: el motor
// de venta descuenta stock dentro de su propia transacción.
type StockUseCase struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
}

// NewStockUseCase construye el caso de uso de stock.
func NewStockUseCase(inventoryRepo repository.InventoryRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{inventoryRepo: inventoryRepo, productRepo: productRepo}
}

// Adjust aplica un ajuste relativo: positivo repone, negativo descuenta con
// la misma protección de no-negatividad que la venta.
func (uc *StockUseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) error {
	if in.ProductID == "" || in.Quantity == 0 {
		return fmt.Errorf("%w: producto y cantidad distinta de cero requeridos", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if in.Quantity > 0 {
		return uc.inventoryRepo.IncrementStock(ctx, in.ProductID, in.Quantity)
	}
	return uc.inventoryRepo.DecrementStock(ctx, in.ProductID, -in.Quantity)
}

// StockLevel stock actual de un producto.
func (uc *StockUseCase) StockLevel(ctx context.Context, productID string) (int, error) {
	if productID == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.inventoryRepo.GetStockLevel(ctx, productID)
}

// LowStock productos activos en o bajo su nivel de reorden.
func (uc *StockUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}
