package sales

import (
	"context"

	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repos de ventas e inventario. Si fn retorna error el runner hace rollback
// completo: ni cabecera, ni líneas, ni descuentos de stock quedan aplicados
// a medias, y el número de factura leído dentro de la tx no se consume.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// StoreInfo datos de la tienda para la cabecera del recibo.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// ReceiptPDFGenerator genera la representación PDF de un recibo de venta.
// Consume una venta ya cargada (cabecera + líneas); no participa en la
// persistencia.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, store StoreInfo) ([]byte, error)
}
