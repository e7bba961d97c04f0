package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/invoice"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// maxInvoiceRetries reintentos ante carrera de numeración (constraint único
// sobre invoice_no) antes de devolver el error al caller.
const maxInvoiceRetries = 3

// PostSaleUseCase registra una venta completa en una sola transacción:
// numeración de factura, cabecera, líneas y descuento de stock. Si cualquier
// paso falla se revierte todo; un intento fallido no consume número (la
// numeración se deriva solo de filas confirmadas, por lo que no deja huecos).
type PostSaleUseCase struct {
	txRunner    SaleTxRunner
	productRepo repository.ProductRepository
}

// NewPostSaleUseCase construye el motor de venta.
func NewPostSaleUseCase(txRunner SaleTxRunner, productRepo repository.ProductRepository) *PostSaleUseCase {
	return &PostSaleUseCase{txRunner: txRunner, productRepo: productRepo}
}

// PostSale valida el borrador, recalcula totales desde las líneas (nunca se
// confía en un subtotal del caller) y persiste la venta de forma atómica.
// El cajero es un parámetro explícito: no hay sesión ambiente.
func (uc *PostSaleUseCase) PostSale(ctx context.Context, userID string, in dto.PostSaleRequest) (*dto.PostSaleResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene líneas", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	if in.Tax.IsNegative() || in.Discount.IsNegative() || in.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: montos negativos", domain.ErrInvalidInput)
	}

	// Resolver productos y congelar snapshots (nombre, barcode, precio) fuera
	// de la tx: solo lecturas. El precio no se vuelve a consultar a mitad de
	// transacción.
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for i := range in.Items {
		line := &in.Items[i]
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: línea con producto vacío o cantidad no positiva", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, line.ProductID)
		}
		if product.Status != entity.ProductActive {
			return nil, fmt.Errorf("%w: producto %s inactivo", domain.ErrInvalidInput, product.Barcode)
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
		}
		if unitPrice.IsZero() {
			unitPrice = product.SellingPrice
		}
		items = append(items, &entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Barcode:     product.Barcode,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	subtotal, total := entity.ComputeTotals(items, in.Tax, in.Discount)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: total negativo", domain.ErrInvalidInput)
	}
	if in.AmountPaid.LessThan(total) {
		return nil, fmt.Errorf("%w: pago %s menor que el total %s",
			domain.ErrInvalidInput, in.AmountPaid.StringFixed(2), total.StringFixed(2))
	}
	for _, it := range items {
		it.Subtotal = it.LineSubtotal()
	}

	// Numeración + inserciones + stock dentro de UNA transacción. Dos posts
	// concurrentes pueden leer el mismo último número; el constraint único de
	// invoice_no detecta la carrera y se reintenta con numeración fresca.
	var sale *entity.Sale
	for attempt := 0; attempt < maxInvoiceRetries; attempt++ {
		err := uc.txRunner.RunSale(ctx, func(
			saleRepo repository.SaleRepository,
			inventoryRepo repository.InventoryRepository,
		) error {
			last, err := saleRepo.LastInvoiceNumber(ctx)
			if err != nil {
				return err
			}
			number := invoice.First()
			if last != "" {
				parsed, err := invoice.Parse(last)
				if err != nil {
					// Valor almacenado ilegible: abortar, nunca fabricar un
					// número que pueda duplicar uno existente.
					return fmt.Errorf("%w: último emitido %q", domain.ErrInvoiceFormat, last)
				}
				number = parsed.Next()
			}

			now := time.Now()
			sale = &entity.Sale{
				ID:            uuid.New().String(),
				InvoiceNo:     number.String(),
				CustomerID:    in.CustomerID,
				UserID:        userID,
				SaleDate:      now,
				Subtotal:      subtotal,
				Tax:           in.Tax,
				Discount:      in.Discount,
				TotalAmount:   total,
				AmountPaid:    in.AmountPaid,
				ChangeDue:     in.AmountPaid.Sub(total),
				PaymentMethod: in.PaymentMethod,
				Notes:         in.Notes,
				CreatedAt:     now,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}
			for _, it := range items {
				item := &entity.SaleItem{
					ID:          uuid.New().String(),
					SaleID:      sale.ID,
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Barcode:     it.Barcode,
					Quantity:    it.Quantity,
					UnitPrice:   it.UnitPrice,
					Subtotal:    it.Subtotal,
				}
				if err := saleRepo.CreateItem(ctx, item); err != nil {
					return err
				}
				// Descuento relativo y protegido en el storage; si no alcanza
				// el stock se aborta la venta completa.
				if err := inventoryRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateInvoice) {
				continue
			}
			return nil, err
		}
		return &dto.PostSaleResponse{
			SaleID:      sale.ID,
			InvoiceNo:   sale.InvoiceNo,
			Subtotal:    sale.Subtotal,
			Tax:         sale.Tax,
			Discount:    sale.Discount,
			TotalAmount: sale.TotalAmount,
			AmountPaid:  sale.AmountPaid,
			ChangeDue:   sale.ChangeDue,
		}, nil
	}
	return nil, fmt.Errorf("numeración de factura: %d reintentos agotados: %w",
		maxInvoiceRetries, domain.ErrDuplicateInvoice)
}
