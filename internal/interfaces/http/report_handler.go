package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fournull/pcsale-api/internal/application/reports"
)

// ReportHandler reportes y agregaciones de ventas (protegido).
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSeries godoc
// @Summary      Serie agregada de ventas
// @Description  Agrupa ventas por hour, day, week o month en orden cronológico.
//
//	Los períodos sin ventas no emiten bucket.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        bucket  query  string  true   "hour | day | week | month"
// @Param        last    query  int     false  "Períodos hacia atrás (default según bucket)"
// @Success      200  {array}   dto.SalesBucketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSeries(c *fiber.Ctx) error {
	bucket := c.Query("bucket", "day")
	last := c.QueryInt("last", 0)
	list, err := h.uc.SalesSeries(c.Context(), bucket, last)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "series": list})
}

// SummaryToday godoc
// @Summary      Resumen del día (total y cantidad de ventas)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TodaySummaryResponse
// @Router       /api/reports/summary/today [get]
func (h *ReportHandler) SummaryToday(c *fiber.Ctx) error {
	resp, err := h.uc.SummaryToday(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// TopProducts godoc
// @Summary      Productos con mayor ingreso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days   query  int  false  "Ventana en días (default 30)"
// @Param        limit  query  int  false  "Máximo de productos (default 10)"
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	list, err := h.uc.TopProducts(c.Context(), c.QueryInt("days", 0), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "products": list})
}
