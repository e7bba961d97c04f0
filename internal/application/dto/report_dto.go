package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesBucketResponse un punto de la serie agregada de ventas.
type SalesBucketResponse struct {
	BucketStart time.Time       `json:"bucket_start"`
	Label       string          `json:"label"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// TodaySummaryResponse resumen del día para el dashboard.
type TodaySummaryResponse struct {
	Date       string          `json:"date"`
	SalesCount int             `json:"sales_count"`
	Total      decimal.Decimal `json:"total"`
}

// TopProductResponse producto con mayor ingreso en el período.
type TopProductResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Barcode      string          `json:"barcode"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
