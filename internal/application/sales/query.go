package sales

import (
	"context"
	"time"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas: detalle, búsqueda por factura e
// historial. Solo consume el repositorio; no adquiere locks adicionales.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso de lectura.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetByID devuelve la venta completa (cabecera + líneas en orden).
func (uc *SaleQueryUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// GetByInvoice devuelve la venta completa por número de factura.
func (uc *SaleQueryUseCase) GetByInvoice(ctx context.Context, invoiceNo string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByInvoice(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// GetEntity devuelve la entidad cargada (para renderizar recibos).
func (uc *SaleQueryUseCase) GetEntity(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// History lista cabeceras descendente por fecha. Ambos límites nil = todas.
func (uc *SaleQueryUseCase) History(ctx context.Context, from, to *time.Time) ([]dto.SaleResponse, error) {
	if (from == nil) != (to == nil) {
		return nil, domain.ErrInvalidInput // rango a medias
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		InvoiceNo:     s.InvoiceNo,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		UserID:        s.UserID,
		UserName:      s.UserName,
		SaleDate:      s.SaleDate,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		TotalAmount:   s.TotalAmount,
		AmountPaid:    s.AmountPaid,
		ChangeDue:     s.ChangeDue,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Barcode:     it.Barcode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
