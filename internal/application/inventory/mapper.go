package inventory

import (
	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain/entity"
)

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
