// Package receipt renderiza el recibo de venta en texto plano de 42 columnas,
// el ancho de las impresoras térmicas de punto de venta.
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/domain/entity"
)

const width = 42

// Renderer recibo en texto plano.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer construye el renderizador de recibos.
func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

// Render produce el recibo completo de una venta ya cargada (cabecera + líneas).
func (r *Renderer) Render(sale *entity.Sale, store sales.StoreInfo) string {
	var b strings.Builder
	sep := strings.Repeat("-", width)

	b.WriteString(center(store.Name) + "\n")
	b.WriteString(center(store.Address) + "\n")
	b.WriteString(center(store.Phone) + "\n")
	b.WriteString(sep + "\n")

	b.WriteString("Invoice:  " + sale.InvoiceNo + "\n")
	b.WriteString("Date:     " + sale.SaleDate.Format("02/01/2006 15:04") + "\n")
	b.WriteString("Cashier:  " + sale.UserName + "\n")
	b.WriteString("Customer: " + sale.CustomerName + "\n")
	b.WriteString(sep + "\n")

	// Nombre 17 + Cant 4 + Precio 9 + Total 10 (con separadores) = 42
	b.WriteString(fmt.Sprintf("%-17s %4s %9s %9s\n", "Item", "Qty", "Price", "Total"))
	b.WriteString(sep + "\n")
	for _, it := range sale.Items {
		b.WriteString(fmt.Sprintf("%-17s %4d %9s %9s\n",
			truncate(it.ProductName, 17),
			it.Quantity,
			r.money(it.UnitPrice),
			r.money(it.Subtotal),
		))
	}
	b.WriteString(sep + "\n")

	b.WriteString(r.totalLine("Subtotal:", sale.Subtotal))
	if !sale.Tax.IsZero() {
		b.WriteString(r.totalLine("Tax:", sale.Tax))
	}
	if !sale.Discount.IsZero() {
		b.WriteString(r.totalLine("Discount:", sale.Discount.Neg()))
	}
	b.WriteString(r.totalLine("TOTAL:", sale.TotalAmount))
	b.WriteString(sep + "\n")

	b.WriteString(r.totalLine("Paid ("+sale.PaymentMethod+"):", sale.AmountPaid))
	b.WriteString(r.totalLine("Change:", sale.ChangeDue))
	b.WriteString(sep + "\n")

	b.WriteString(center("Thank you for shopping with us!") + "\n")
	b.WriteString(center("Please come again") + "\n")
	return b.String()
}

func (r *Renderer) totalLine(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("%-28s %13s\n", label, r.money(amount))
}

// money formatea con separador de miles: 1234.5 -> $1,234.50. La parte
// entera se formatea como entero y los centavos se copian del string exacto
// del decimal; el monto nunca pasa por float.
func (r *Renderer) money(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	dot := strings.LastIndex(fixed, ".")
	units, _ := strconv.ParseInt(fixed[:dot], 10, 64)
	out := r.printer.Sprintf("$%d.%s", units, fixed[dot+1:])
	if neg {
		out = "$-" + out[1:]
	}
	return out
}

func center(s string) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
