package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fournull/pcsale-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de ventas de solo lectura. Siempre va al pool:
// los reportes no participan en transacciones de venta.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByBucket agrupa ventas por hour/day/week/month desde since, en orden
// cronológico. Los períodos sin ventas no emiten fila: el agregado sale de
// las ventas que existen, no de un calendario.
func (r *ReportRepo) SalesByBucket(ctx context.Context, bucket string, since time.Time) ([]repository.SalesBucket, error) {
	if !repository.ValidBucket(bucket) {
		return nil, fmt.Errorf("bucket no soportado: %q", bucket)
	}
	query := `
		SELECT date_trunc($1, sale_date) AS bucket_start,
		       COUNT(*) AS sales_count,
		       COALESCE(SUM(total_amount), 0) AS total
		FROM sales
		WHERE sale_date >= $2
		GROUP BY bucket_start
		ORDER BY bucket_start ASC`
	rows, err := r.q.Query(ctx, query, bucket, since)
	if err != nil {
		return nil, fmt.Errorf("sales by bucket: %w", err)
	}
	defer rows.Close()

	var list []repository.SalesBucket
	for rows.Next() {
		var b repository.SalesBucket
		if err := rows.Scan(&b.BucketStart, &b.Count, &b.Total); err != nil {
			return nil, fmt.Errorf("scan bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// TotalForToday suma total_amount del día actual (0 si no hay ventas).
func (r *ReportRepo) TotalForToday(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE sale_date >= date_trunc('day', NOW())`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total for today: %w", err)
	}
	return total, nil
}

// SalesCount cuenta ventas en el rango [from, to).
func (r *ReportRepo) SalesCount(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM sales WHERE sale_date >= $1 AND sale_date < $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("sales count: %w", err)
	}
	return count, nil
}

// TopProducts productos con mayor ingreso desde since. Usa el snapshot de
// nombre/código en sale_items para que renombres posteriores no alteren
// reportes históricos.
func (r *ReportRepo) TopProducts(ctx context.Context, since time.Time, limit int) ([]repository.ProductSales, error) {
	query := `
		SELECT si.product_id, si.product_name, si.barcode,
		       SUM(si.quantity) AS quantity_sold,
		       COALESCE(SUM(si.subtotal), 0) AS total_revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.sale_date >= $1
		GROUP BY si.product_id, si.product_name, si.barcode
		ORDER BY total_revenue DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductSales
	for rows.Next() {
		var p repository.ProductSales
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Barcode, &p.QuantitySold, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan product sales: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
