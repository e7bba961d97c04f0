package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// ProductUseCase operaciones de catálogo. El stock se consulta aquí pero
// solo se modifica vía ajustes de inventario o ventas.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create da de alta un producto. El código de barras es obligatorio y único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := strings.TrimSpace(in.Barcode)
	name := strings.TrimSpace(in.Name)
	if barcode == "" || name == "" {
		return nil, fmt.Errorf("%w: código de barras y nombre requeridos", domain.ErrInvalidInput)
	}
	if in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if in.StockQty < 0 {
		return nil, fmt.Errorf("%w: stock inicial negativo", domain.ErrInvalidInput)
	}

	existing, err := uc.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: código de barras %s", domain.ErrDuplicate, barcode)
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Barcode:       barcode,
		Name:          name,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		StockQuantity: in.StockQty,
		ReorderLevel:  in.ReorderLevel,
		Unit:          in.Unit,
		ImagePath:     in.ImagePath,
		Status:        entity.ProductActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID busca un producto por su identificador.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByBarcode busca un producto por código de barras (escaneo en caja).
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update modifica los datos de catálogo de un producto existente.
// No toca el stock: eso es territorio de inventario.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		product.Name = name
	}
	if in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.CostPrice = in.CostPrice
	product.SellingPrice = in.SellingPrice
	product.ReorderLevel = in.ReorderLevel
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	if in.ImagePath != "" {
		product.ImagePath = in.ImagePath
	}
	if in.Status != "" {
		if in.Status != entity.ProductActive && in.Status != entity.ProductInactive {
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
		}
		product.Status = in.Status
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve una página del catálogo.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.Normalize()
	products, err := uc.productRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		StockQty:     p.StockQuantity,
		ReorderLevel: p.ReorderLevel,
		Unit:         p.Unit,
		ImagePath:    p.ImagePath,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
