package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id"`
	SupplierID   *string         `json:"supplier_id"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	StockQty     int             `json:"stock_quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Unit         string          `json:"unit"`
	ImagePath    string          `json:"image_path"`
}

// UpdateProductRequest modificación de producto. El stock no se toca aquí:
// los cambios de stock van por ajustes de inventario.
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id"`
	SupplierID   *string         `json:"supplier_id"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ReorderLevel int             `json:"reorder_level"`
	Unit         string          `json:"unit"`
	ImagePath    string          `json:"image_path"`
	Status       string          `json:"status"`
}

// ProductResponse producto para lecturas.
type ProductResponse struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id,omitempty"`
	SupplierID   *string         `json:"supplier_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	StockQty     int             `json:"stock_quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Unit         string          `json:"unit"`
	ImagePath    string          `json:"image_path,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AdjustStockRequest ajuste manual de inventario. Quantity positivo repone,
// negativo descuenta (con la misma protección de no-negatividad que la venta).
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}
