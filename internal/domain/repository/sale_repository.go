package repository

import (
	"context"
	"time"

	"github.com/fournull/pcsale-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas. Las ventas son append-only:
// no hay Update ni Delete.
type SaleRepository interface {
	// Create persiste la cabecera. Retorna domain.ErrDuplicateInvoice si el
	// número de factura ya existe (constraint único, detección de carrera).
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateItem persiste una línea ligada a su cabecera.
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// LastInvoiceNumber devuelve el último número emitido ("" si no hay ventas).
	// El orden es por invoice_no descendente: con formato de ancho fijo el
	// orden lexicográfico equivale al numérico y no depende del reloj.
	LastInvoiceNumber(ctx context.Context) (string, error)
	// GetByID devuelve la venta con sus líneas en orden, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// GetByInvoice devuelve la venta con sus líneas en orden, o nil si no existe.
	GetByInvoice(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	// ListByDateRange lista cabeceras descendente por fecha de venta.
	// Con ambos límites nil devuelve todas las ventas.
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
}
