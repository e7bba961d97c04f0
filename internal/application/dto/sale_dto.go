package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostSaleItemRequest una línea del carrito. Si UnitPrice es cero se usa el
// precio de venta actual del producto (snapshot al momento de postear).
type PostSaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PostSaleRequest venta en borrador construida por la caja. Subtotal y total
// no se reciben: el motor los recalcula siempre desde las líneas.
type PostSaleRequest struct {
	CustomerID    *string               `json:"customer_id"`
	Tax           decimal.Decimal       `json:"tax"`
	Discount      decimal.Decimal       `json:"discount"`
	AmountPaid    decimal.Decimal       `json:"amount_paid"`
	PaymentMethod string                `json:"payment_method"`
	Notes         string                `json:"notes"`
	Items         []PostSaleItemRequest `json:"items"`
}

// PostSaleResponse resultado de postear una venta.
type PostSaleResponse struct {
	SaleID      string          `json:"sale_id"`
	InvoiceNo   string          `json:"invoice_no"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	ChangeDue   decimal.Decimal `json:"change_due"`
}

// SaleItemResponse línea de venta para lecturas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Barcode     string          `json:"barcode"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta completa para lecturas.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNo     string             `json:"invoice_no"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	UserID        string             `json:"user_id"`
	UserName      string             `json:"user_name"`
	SaleDate      time.Time          `json:"sale_date"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Discount      decimal.Decimal    `json:"discount"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	AmountPaid    decimal.Decimal    `json:"amount_paid"`
	ChangeDue     decimal.Decimal    `json:"change_due"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}
