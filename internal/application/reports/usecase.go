package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// ReportsUseCase agregaciones de ventas para dashboard y gráficos.
// Las series van en orden cronológico (ascendente por inicio de bucket);
// el historial de ventas, en cambio, es "más reciente primero".
type ReportsUseCase struct {
	repo repository.ReportRepository
}

// NewReportsUseCase construye el caso de uso de reportes.
func NewReportsUseCase(repo repository.ReportRepository) *ReportsUseCase {
	return &ReportsUseCase{repo: repo}
}

// SalesSeries devuelve la serie agregada para el bucket pedido mirando
// `last` períodos hacia atrás (para hour siempre es el día de hoy).
func (uc *ReportsUseCase) SalesSeries(ctx context.Context, bucket string, last int) ([]dto.SalesBucketResponse, error) {
	if !repository.ValidBucket(bucket) {
		return nil, fmt.Errorf("%w: bucket %q", domain.ErrInvalidInput, bucket)
	}
	if last <= 0 {
		last = defaultWindow(bucket)
	}
	since := windowStart(bucket, last, time.Now())

	rows, err := uc.repo.SalesByBucket(ctx, bucket, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesBucketResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesBucketResponse{
			BucketStart: r.BucketStart,
			Label:       bucketLabel(bucket, r.BucketStart),
			Count:       r.Count,
			Total:       r.Total,
		})
	}
	return out, nil
}

// SummaryToday total y cantidad de ventas del día actual.
func (uc *ReportsUseCase) SummaryToday(ctx context.Context) (*dto.TodaySummaryResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total, err := uc.repo.TotalForToday(ctx)
	if err != nil {
		return nil, err
	}
	count, err := uc.repo.SalesCount(ctx, dayStart, now)
	if err != nil {
		return nil, err
	}
	return &dto.TodaySummaryResponse{
		Date:       dayStart.Format("2006-01-02"),
		SalesCount: count,
		Total:      total,
	}, nil
}

// TopProducts productos con mayor ingreso en los últimos `days` días.
func (uc *ReportsUseCase) TopProducts(ctx context.Context, days, limit int) ([]dto.TopProductResponse, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := uc.repo.TopProducts(ctx, time.Now().AddDate(0, 0, -days), limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			Barcode:      r.Barcode,
			QuantitySold: r.QuantitySold,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

func defaultWindow(bucket string) int {
	switch bucket {
	case repository.BucketDay:
		return 7
	case repository.BucketWeek:
		return 4
	case repository.BucketMonth:
		return 6
	default: // hour
		return 1
	}
}

// windowStart calcula desde cuándo mirar: hour = inicio del día de hoy;
// day/week/month = N períodos hacia atrás desde hoy.
func windowStart(bucket string, last int, now time.Time) time.Time {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch bucket {
	case repository.BucketHour:
		return dayStart
	case repository.BucketDay:
		return dayStart.AddDate(0, 0, -(last - 1))
	case repository.BucketWeek:
		return dayStart.AddDate(0, 0, -7*last)
	default: // month
		return dayStart.AddDate(0, -last, 0)
	}
}

func bucketLabel(bucket string, start time.Time) string {
	switch bucket {
	case repository.BucketHour:
		return start.Format("15:00")
	case repository.BucketDay:
		return start.Format("2006-01-02")
	case repository.BucketWeek:
		return start.Format("2006-01-02") // lunes de la semana
	default:
		return start.Format("2006-01")
	}
}
