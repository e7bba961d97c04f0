package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fournull/pcsale-api/internal/domain/entity"
)

func item(qty int, price string) *entity.SaleItem {
	return &entity.SaleItem{Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestComputeTotals_SumaLineasExacta(t *testing.T) {
	items := []*entity.SaleItem{
		item(3, "5.00"),  // 15.00
		item(2, "10.50"), // 21.00
		item(1, "0.99"),  // 0.99
	}
	subtotal, total := entity.ComputeTotals(items, decimal.RequireFromString("2.50"), decimal.RequireFromString("1.49"))

	assert.True(t, subtotal.Equal(decimal.RequireFromString("36.99")),
		"subtotal debe ser exacto sin deriva de redondeo, got %s", subtotal)
	assert.True(t, total.Equal(decimal.RequireFromString("38.00")),
		"total = subtotal + tax - discount, got %s", total)
}

func TestComputeTotals_SinItems(t *testing.T) {
	subtotal, total := entity.ComputeTotals(nil, decimal.Zero, decimal.Zero)
	assert.True(t, subtotal.IsZero())
	assert.True(t, total.IsZero())
}

func TestComputeTotals_DescuentoMayorQueSubtotal(t *testing.T) {
	// El total puede salir negativo aquí; el motor de venta es quien rechaza.
	_, total := entity.ComputeTotals([]*entity.SaleItem{item(1, "5.00")}, decimal.Zero, decimal.RequireFromString("10.00"))
	assert.True(t, total.IsNegative())
}

func TestLineSubtotal(t *testing.T) {
	it := item(4, "2.25")
	assert.True(t, it.LineSubtotal().Equal(decimal.RequireFromString("9.00")))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{entity.PaymentCash, entity.PaymentCard, entity.PaymentMobile, entity.PaymentCredit} {
		assert.True(t, entity.ValidPaymentMethod(m), "%s debe ser válido", m)
	}
	assert.False(t, entity.ValidPaymentMethod("check"))
	assert.False(t, entity.ValidPaymentMethod(""))
}
