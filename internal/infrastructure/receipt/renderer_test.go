package receipt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/infrastructure/receipt"
)

var testStore = sales.StoreInfo{
	Name:    "4 Null TECH",
	Address: "2004 Street, Siem Reap City",
	Phone:   "(+855) 088 65 404 83",
}

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:            "s1",
		InvoiceNo:     "INV000042",
		CustomerName:  "Walk-in Customer",
		UserName:      "Sokha",
		SaleDate:      time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
		Subtotal:      decimal.RequireFromString("1250.00"),
		Tax:           decimal.RequireFromString("125.00"),
		Discount:      decimal.RequireFromString("75.00"),
		TotalAmount:   decimal.RequireFromString("1300.00"),
		AmountPaid:    decimal.RequireFromString("1500.00"),
		ChangeDue:     decimal.RequireFromString("200.00"),
		PaymentMethod: entity.PaymentCash,
		Items: []*entity.SaleItem{
			{ProductName: "Teclado mecánico retroiluminado RGB", Quantity: 2, UnitPrice: decimal.RequireFromString("500.00"), Subtotal: decimal.RequireFromString("1000.00")},
			{ProductName: "Mouse", Quantity: 1, UnitPrice: decimal.RequireFromString("250.00"), Subtotal: decimal.RequireFromString("250.00")},
		},
	}
}

func TestRender_ContenidoCompleto(t *testing.T) {
	out := receipt.NewRenderer().Render(sampleSale(), testStore)

	assert.Contains(t, out, "4 Null TECH")
	assert.Contains(t, out, "2004 Street, Siem Reap City")
	assert.Contains(t, out, "(+855) 088 65 404 83")
	assert.Contains(t, out, "INV000042")
	assert.Contains(t, out, "30/08/2026 14:05")
	assert.Contains(t, out, "Sokha")
	assert.Contains(t, out, "Walk-in Customer")
	assert.Contains(t, out, "Mouse")
	assert.Contains(t, out, "Thank you for shopping with us!")
}

func TestRender_MontosConSeparadorDeMiles(t *testing.T) {
	out := receipt.NewRenderer().Render(sampleSale(), testStore)

	assert.Contains(t, out, "$1,250.00", "subtotal con separador de miles")
	assert.Contains(t, out, "$1,300.00", "total con separador de miles")
	assert.Contains(t, out, "$-75.00", "descuento en negativo")
	assert.Contains(t, out, "$200.00", "vuelto")
	assert.Contains(t, out, "Paid (cash):")
}

func TestRender_MontosExactosSinPasarPorFloat(t *testing.T) {
	// Montos cuyos centavos superan la precisión de float64: el recibo debe
	// copiar los centavos exactos del decimal, no redondearlos.
	sale := sampleSale()
	sale.TotalAmount = decimal.RequireFromString("90071992547409.93")
	out := receipt.NewRenderer().Render(sale, testStore)

	assert.Contains(t, out, "$90,071,992,547,409.93", "los centavos no deben redondearse")
}

func TestRender_DescuentoMenorAUnoConservaElSigno(t *testing.T) {
	sale := sampleSale()
	sale.Discount = decimal.RequireFromString("0.50")
	out := receipt.NewRenderer().Render(sale, testStore)

	assert.Contains(t, out, "$-0.50", "el signo se conserva aunque la parte entera sea cero")
}

func TestRender_AnchoDeTicket(t *testing.T) {
	out := receipt.NewRenderer().Render(sampleSale(), testStore)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 42, "línea excede el ancho del ticket: %q", line)
	}
}

func TestRender_NombreLargoTruncado(t *testing.T) {
	out := receipt.NewRenderer().Render(sampleSale(), testStore)
	assert.NotContains(t, out, "retroiluminado RGB", "el nombre largo debe truncarse a la columna")
}

func TestRender_SinImpuestoNiDescuentoOmiteLineas(t *testing.T) {
	sale := sampleSale()
	sale.Tax = decimal.Zero
	sale.Discount = decimal.Zero
	out := receipt.NewRenderer().Render(sale, testStore)

	assert.NotContains(t, out, "Tax:")
	assert.NotContains(t, out, "Discount:")
	assert.Contains(t, out, "TOTAL:")
}
