package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta. La constraint única de invoice_no
// es el detector de carreras de numeración: dos ventas concurrentes que leen
// el mismo "último número" chocan aquí y el caso de uso reintenta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, invoice_no, customer_id, user_id, sale_date,
		                   subtotal, tax, discount, total_amount, amount_paid,
		                   change_due, payment_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.InvoiceNo, sale.CustomerID, sale.UserID, sale.SaleDate,
		sale.Subtotal, sale.Tax, sale.Discount, sale.TotalAmount, sale.AmountPaid,
		sale.ChangeDue, sale.PaymentMethod, nullIfEmpty(sale.Notes), sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateInvoice, sale.InvoiceNo)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, barcode, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.ProductID, item.ProductName, item.Barcode,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// LastInvoiceNumber devuelve el mayor invoice_no emitido ("" si no hay ventas).
// Con formato de ancho fijo el orden lexicográfico coincide con el numérico,
// así la numeración no depende del reloj ni del orden de inserción.
func (r *SaleRepo) LastInvoiceNumber(ctx context.Context) (string, error) {
	var invoiceNo string
	err := r.q.QueryRow(ctx, `SELECT invoice_no FROM sales ORDER BY invoice_no DESC LIMIT 1`).Scan(&invoiceNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return invoiceNo, nil
}

const saleSelect = `
	SELECT s.id, s.invoice_no, s.customer_id, COALESCE(c.name, 'Walk-in Customer'),
	       s.user_id, COALESCE(u.full_name, ''), s.sale_date,
	       s.subtotal, s.tax, s.discount, s.total_amount, s.amount_paid,
	       s.change_due, s.payment_method, COALESCE(s.notes, ''), s.created_at
	FROM sales s
	LEFT JOIN customers c ON c.id = s.customer_id
	LEFT JOIN users u ON u.id = s.user_id`

// GetByID obtiene la venta completa (cabecera + líneas en orden) o nil.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	return r.getOne(ctx, saleSelect+` WHERE s.id = $1`, id)
}

// GetByInvoice obtiene la venta completa por número de factura o nil.
func (r *SaleRepo) GetByInvoice(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	return r.getOne(ctx, saleSelect+` WHERE s.invoice_no = $1`, invoiceNo)
}

func (r *SaleRepo) getOne(ctx context.Context, query string, arg any) (*entity.Sale, error) {
	sale, err := r.scanSale(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySaleID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// ListByDateRange lista cabeceras descendente por fecha (sin líneas).
// Ambos límites nil = todas las ventas; el rango es [from, to).
func (r *SaleRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	query := saleSelect
	args := []any{}
	if from != nil && to != nil {
		query += ` WHERE s.sale_date >= $1 AND s.sale_date < $2`
		args = append(args, *from, *to)
	}
	query += ` ORDER BY s.sale_date DESC, s.invoice_no DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

func (r *SaleRepo) scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.InvoiceNo, &s.CustomerID, &s.CustomerName,
		&s.UserID, &s.UserName, &s.SaleDate,
		&s.Subtotal, &s.Tax, &s.Discount, &s.TotalAmount, &s.AmountPaid,
		&s.ChangeDue, &s.PaymentMethod, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) itemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, barcode, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Barcode,
			&it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
