package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets de agregación temporal para reportes.
const (
	BucketHour  = "hour"
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
)

// ValidBucket indica si el bucket es uno de los soportados.
func ValidBucket(b string) bool {
	switch b {
	case BucketHour, BucketDay, BucketWeek, BucketMonth:
		return true
	}
	return false
}

// SalesBucket una fila de agregación: inicio del período, ventas y monto.
type SalesBucket struct {
	BucketStart time.Time
	Count       int
	Total       decimal.Decimal
}

// ProductSales ventas acumuladas de un producto en un período.
type ProductSales struct {
	ProductID    string
	ProductName  string
	Barcode      string
	QuantitySold int
	TotalRevenue decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de ventas.
// Las agregaciones se calculan en una sola pasada sobre las filas del período;
// los períodos sin ventas no emiten bucket. El orden es ascendente por inicio
// de bucket (cronológico, para graficar), al contrario que el listado de
// ventas que es "más reciente primero".
type ReportRepository interface {
	// SalesByBucket agrupa ventas desde since por hour/day/week/month.
	SalesByBucket(ctx context.Context, bucket string, since time.Time) ([]SalesBucket, error)
	// TotalForToday devuelve la suma de total_amount del día actual (0 si no hay ventas).
	TotalForToday(ctx context.Context) (decimal.Decimal, error)
	// SalesCount cuenta ventas en el rango.
	SalesCount(ctx context.Context, from, to time.Time) (int, error)
	// TopProducts devuelve los limit productos con mayor ingreso desde since.
	TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductSales, error)
}
