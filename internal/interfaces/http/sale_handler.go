package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/infrastructure/receipt"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	postUC   *sales.PostSaleUseCase
	queryUC  *sales.SaleQueryUseCase
	renderer *receipt.Renderer
	pdfGen   sales.ReceiptPDFGenerator
	store    sales.StoreInfo
}

// NewSaleHandler construye el handler.
func NewSaleHandler(postUC *sales.PostSaleUseCase, queryUC *sales.SaleQueryUseCase,
	renderer *receipt.Renderer, pdfGen sales.ReceiptPDFGenerator, store sales.StoreInfo) *SaleHandler {
	return &SaleHandler{postUC: postUC, queryUC: queryUC, renderer: renderer, pdfGen: pdfGen, store: store}
}

// Post godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostSaleRequest  true  "líneas, pago y montos"
// @Success      201   {object}  dto.PostSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Post(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.PostSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.postUC.PostSale(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.queryUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByInvoice godoc
// @Summary      Buscar venta por número de factura
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        invoice_no  path  string  true  "Número de factura (INVnnnnnn)"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/invoice/{invoice_no} [get]
func (h *SaleHandler) GetByInvoice(c *fiber.Ctx) error {
	resp, err := h.queryUC.GetByInvoice(c.Context(), c.Params("invoice_no"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Historial de ventas
// @Description  Lista cabeceras descendente por fecha. from/to opcionales
//
//	(formato 2006-01-02, ambos inclusivos); se piden juntos o
//	ninguno. Ambos ausentes = todas las ventas.
//
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (inclusive)"
// @Param        to    query  string  false  "Fecha final (inclusive)"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas: formato 2006-01-02"})
	}
	list, err := h.queryUC.History(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "sales": list})
}

// Receipt godoc
// @Summary      Recibo de venta en texto plano (42 columnas)
// @Tags         sales
// @Security     Bearer
// @Produce      plain
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	sale, err := h.queryUC.GetEntity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(h.renderer.Render(sale, h.store))
}

// ReceiptPDF godoc
// @Summary      Recibo de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *SaleHandler) ReceiptPDF(c *fiber.Ctx) error {
	sale, err := h.queryUC.GetEntity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateReceiptPDF(c.Context(), sale, h.store)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+sale.InvoiceNo+`.pdf"`)
	return c.Send(pdfBytes)
}

// parseDateRange interpreta from/to como fechas locales. "" y "" = sin filtro.
func parseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	if fromStr == "" && toStr == "" {
		return nil, nil, nil
	}
	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		return nil, nil, err
	}
	// to es inclusivo para el usuario: internamente [from, to+1d)
	toExcl := to.AddDate(0, 0, 1)
	return &from, &toExcl, nil
}
