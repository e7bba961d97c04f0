package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product representa un producto del catálogo con su nivel de stock.
// StockQuantity solo se modifica con ajustes relativos en la capa de
// persistencia (stock_quantity = stock_quantity ± n), nunca con
// read-modify-write desde memoria.
type Product struct {
	ID            string
	Barcode       string // único, obligatorio
	Name          string
	CategoryID    *string
	SupplierID    *string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQuantity int
	ReorderLevel  int
	Unit          string // pcs, kg, box...
	ImagePath     string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
