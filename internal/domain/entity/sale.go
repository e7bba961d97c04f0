package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentMobile = "mobile"
	PaymentCredit = "credit"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentCredit:
		return true
	}
	return false
}

// Sale representa la cabecera de una venta registrada en caja.
// Una venta persistida es inmutable: el sistema no define update ni delete
// sobre ventas (libro mayor append-only).
type Sale struct {
	ID            string
	InvoiceNo     string
	CustomerID    *string
	CustomerName  string // denormalizado en lecturas (JOIN customers)
	UserID        string
	UserName      string // denormalizado en lecturas (JOIN users)
	SaleDate      time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	ChangeDue     decimal.Decimal
	PaymentMethod string // cash, card, mobile, credit
	Notes         string
	Items         []*SaleItem
	CreatedAt     time.Time
}

// SaleItem representa una línea de una venta. ProductName y Barcode son un
// snapshot del producto al momento de la venta; UnitPrice no cambia después
// de creada la línea.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Barcode     string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// LineSubtotal calcula unit_price × quantity de la línea.
func (i *SaleItem) LineSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotals calcula subtotal y total a partir de las líneas y los montos
// explícitos de impuesto y descuento. Función pura: no muta las líneas y el
// resultado no depende de campos derivados previos.
//
//	subtotal = Σ unit_price × quantity
//	total    = subtotal + tax − discount
func ComputeTotals(items []*SaleItem, tax, discount decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineSubtotal())
	}
	total = subtotal.Add(tax).Sub(discount)
	return subtotal, total
}
