package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournull/pcsale-api/internal/application/reports"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

type fakeReportRepo struct {
	buckets   []repository.SalesBucket
	total     decimal.Decimal
	count     int
	gotBucket string
	gotSince  time.Time
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (f *fakeReportRepo) SalesByBucket(_ context.Context, bucket string, since time.Time) ([]repository.SalesBucket, error) {
	f.gotBucket = bucket
	f.gotSince = since
	return f.buckets, nil
}

func (f *fakeReportRepo) TotalForToday(_ context.Context) (decimal.Decimal, error) {
	return f.total, nil
}

func (f *fakeReportRepo) SalesCount(_ context.Context, _, _ time.Time) (int, error) {
	return f.count, nil
}

func (f *fakeReportRepo) TopProducts(_ context.Context, _ time.Time, _ int) ([]repository.ProductSales, error) {
	return nil, nil
}

func TestSalesSeries_BucketInvalido(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeReportRepo{})
	_, err := uc.SalesSeries(context.Background(), "minute", 7)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSalesSeries_DiaUnicoConTresVentas(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{buckets: []repository.SalesBucket{
		{BucketStart: day, Count: 3, Total: decimal.RequireFromString("60.00")},
	}}
	uc := reports.NewReportsUseCase(repo)

	rows, err := uc.SalesSeries(context.Background(), repository.BucketDay, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1, "un solo día con ventas produce un solo bucket")
	assert.Equal(t, 3, rows[0].Count)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("60.00")))
	assert.Equal(t, "2026-08-30", rows[0].Label)
	assert.Equal(t, repository.BucketDay, repo.gotBucket)
}

func TestSalesSeries_HourMiraSoloHoy(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewReportsUseCase(repo)

	_, err := uc.SalesSeries(context.Background(), repository.BucketHour, 0)
	require.NoError(t, err)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, dayStart, repo.gotSince, "el bucket horario siempre agrega el día de hoy")
}

func TestSummaryToday_SinVentas(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeReportRepo{total: decimal.Zero})
	sum, err := uc.SummaryToday(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Total.IsZero(), "día sin ventas: total 0, no error")
	assert.Equal(t, 0, sum.SalesCount)
}
