package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournull/pcsale-api/internal/application/dto"
	"github.com/fournull/pcsale-api/internal/application/sales"
	"github.com/fournull/pcsale-api/internal/domain"
	"github.com/fournull/pcsale-api/internal/domain/entity"
	"github.com/fournull/pcsale-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional real: RunSale ejecuta fn sobre
// una copia del estado y solo la publica en el commit. Así los tests de
// atomicidad verifican rollback de verdad (nada a medias), no solo el error.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	salesByID      map[string]*entity.Sale
	salesByInvoice map[string]*entity.Sale
	items          map[string][]*entity.SaleItem // por sale_id
	stock          map[string]int
}

func newMemState() *memState {
	return &memState{
		salesByID:      map[string]*entity.Sale{},
		salesByInvoice: map[string]*entity.Sale{},
		items:          map[string][]*entity.SaleItem{},
		stock:          map[string]int{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.salesByID {
		c.salesByID[k] = v
	}
	for k, v := range s.salesByInvoice {
		c.salesByInvoice[k] = v
	}
	for k, v := range s.items {
		c.items[k] = append([]*entity.SaleItem(nil), v...)
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	return c
}

type memRunner struct {
	mu sync.Mutex // una transacción a la vez, como serializa la base
	st *memState
	// forceDup fuerza ErrDuplicateInvoice en los próximos N Create, simulando
	// la carrera de numeración detectada por el constraint único.
	forceDup int
}

func (r *memRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository, repository.InventoryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	scratch := r.st.clone()
	repo := &memRepo{st: scratch, runner: r}
	if err := fn(repo, repo); err != nil {
		return err // rollback: scratch se descarta
	}
	*r.st = *scratch
	return nil
}

type memRepo struct {
	st     *memState
	runner *memRunner
}

var _ repository.SaleRepository = (*memRepo)(nil)
var _ repository.InventoryRepository = (*memRepo)(nil)

func (m *memRepo) Create(_ context.Context, sale *entity.Sale) error {
	if m.runner.forceDup > 0 {
		m.runner.forceDup--
		return domain.ErrDuplicateInvoice
	}
	if _, ok := m.st.salesByInvoice[sale.InvoiceNo]; ok {
		return domain.ErrDuplicateInvoice
	}
	m.st.salesByID[sale.ID] = sale
	m.st.salesByInvoice[sale.InvoiceNo] = sale
	return nil
}

func (m *memRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	m.st.items[item.SaleID] = append(m.st.items[item.SaleID], item)
	return nil
}

func (m *memRepo) LastInvoiceNumber(_ context.Context) (string, error) {
	last := ""
	for no := range m.st.salesByInvoice {
		if no > last {
			last = no
		}
	}
	return last, nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return m.st.salesByID[id], nil
}

func (m *memRepo) GetByInvoice(_ context.Context, no string) (*entity.Sale, error) {
	return m.st.salesByInvoice[no], nil
}

func (m *memRepo) ListByDateRange(_ context.Context, _, _ *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.st.salesByID {
		out = append(out, s)
	}
	return out, nil
}

func (m *memRepo) DecrementStock(_ context.Context, productID string, qty int) error {
	cur, ok := m.st.stock[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur < qty {
		return domain.ErrInsufficientStock
	}
	m.st.stock[productID] = cur - qty
	return nil
}

func (m *memRepo) IncrementStock(_ context.Context, productID string, qty int) error {
	m.st.stock[productID] += qty
	return nil
}

func (m *memRepo) GetStockLevel(_ context.Context, productID string) (int, error) {
	return m.st.stock[productID], nil
}

type memProducts struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*memProducts)(nil)

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.byID[id], nil
}
func (m *memProducts) GetByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (m *memProducts) Update(_ context.Context, _ *entity.Product) error { return nil }
func (m *memProducts) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (m *memProducts) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	return nil, nil
}

// ── fixture ───────────────────────────────────────────────────────────────────

const cashierID = "user-cajero-1"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup() (*sales.PostSaleUseCase, *memRunner, *memProducts) {
	st := newMemState()
	st.stock["p7"] = 10
	st.stock["p8"] = 1

	products := &memProducts{byID: map[string]*entity.Product{
		"p7": {ID: "p7", Barcode: "8850100700075", Name: "Teclado USB", SellingPrice: dec("5.00"), Status: entity.ProductActive},
		"p8": {ID: "p8", Barcode: "8850100800089", Name: "Mouse óptico", SellingPrice: dec("8.00"), Status: entity.ProductActive},
		"p9": {ID: "p9", Barcode: "8850100900093", Name: "Cable HDMI", SellingPrice: dec("3.50"), Status: entity.ProductInactive},
	}}

	runner := &memRunner{st: st}
	return sales.NewPostSaleUseCase(runner, products), runner, products
}

func draft(items ...dto.PostSaleItemRequest) dto.PostSaleRequest {
	return dto.PostSaleRequest{
		Tax:           decimal.Zero,
		Discount:      decimal.Zero,
		AmountPaid:    dec("1000.00"),
		PaymentMethod: entity.PaymentCash,
		Items:         items,
	}
}

// ── escenarios de éxito ───────────────────────────────────────────────────────

func TestPostSale_VentaSimple(t *testing.T) {
	uc, runner, _ := setup()

	in := draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 3})
	in.AmountPaid = dec("15.00")

	resp, err := uc.PostSale(context.Background(), cashierID, in)
	require.NoError(t, err)

	assert.Equal(t, "INV000001", resp.InvoiceNo, "la primera factura debe ser INV000001")
	assert.True(t, resp.TotalAmount.Equal(dec("15.00")), "total = 3 × 5.00")
	assert.True(t, resp.ChangeDue.IsZero(), "pago exacto: cambio 0")
	assert.Equal(t, 7, runner.st.stock["p7"], "el stock debe bajar exactamente en lo vendido")

	sale := runner.st.salesByInvoice["INV000001"]
	require.NotNil(t, sale, "la venta debe quedar persistida")
	assert.Equal(t, cashierID, sale.UserID)
	require.Len(t, runner.st.items[sale.ID], 1)
	assert.True(t, runner.st.items[sale.ID][0].Subtotal.Equal(dec("15.00")))
}

func TestPostSale_NumeracionConsecutiva(t *testing.T) {
	uc, _, _ := setup()

	r1, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	require.NoError(t, err)
	r2, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	require.NoError(t, err)

	assert.Equal(t, "INV000001", r1.InvoiceNo)
	assert.Equal(t, "INV000002", r2.InvoiceNo)
}

func TestPostSale_PrecioSnapshotDelCatalogo(t *testing.T) {
	uc, runner, products := setup()

	// La línea no trae precio: se congela el precio de venta actual.
	resp, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p8", Quantity: 1}))
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(dec("8.00")))

	// Cambiar el precio del catálogo después no altera la venta persistida.
	products.byID["p8"].SellingPrice = dec("99.00")
	sale := runner.st.salesByInvoice[resp.InvoiceNo]
	assert.True(t, runner.st.items[sale.ID][0].UnitPrice.Equal(dec("8.00")),
		"el precio de la línea es un snapshot inmutable")
}

func TestPostSale_TotalesConImpuestoYDescuento(t *testing.T) {
	uc, _, _ := setup()

	in := draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 2}) // 10.00
	in.Tax = dec("1.90")
	in.Discount = dec("0.90")
	in.AmountPaid = dec("20.00")

	resp, err := uc.PostSale(context.Background(), cashierID, in)
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(dec("10.00")))
	assert.True(t, resp.TotalAmount.Equal(dec("11.00")), "total = subtotal + tax - discount")
	assert.True(t, resp.ChangeDue.Equal(dec("9.00")))
}

// ── validaciones (sin efectos secundarios) ────────────────────────────────────

func TestPostSale_PagoInsuficiente(t *testing.T) {
	uc, runner, _ := setup()

	in := draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 3}) // total 15.00
	in.AmountPaid = dec("10.00")

	_, err := uc.PostSale(context.Background(), cashierID, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "pago menor que el total debe rechazarse")
	assert.Equal(t, 10, runner.st.stock["p7"], "sin efectos: stock intacto")
	assert.Empty(t, runner.st.salesByID, "sin efectos: ninguna venta persistida")
}

func TestPostSale_CarritoVacio(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.PostSale(context.Background(), cashierID, draft())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPostSale_CantidadNoPositiva(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 0}))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPostSale_MetodoDePagoDesconocido(t *testing.T) {
	uc, _, _ := setup()
	in := draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1})
	in.PaymentMethod = "cheque"
	_, err := uc.PostSale(context.Background(), cashierID, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPostSale_DescuentoDejaTotalNegativo(t *testing.T) {
	uc, _, _ := setup()
	in := draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}) // 5.00
	in.Discount = dec("10.00")
	_, err := uc.PostSale(context.Background(), cashierID, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPostSale_ProductoInactivo(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p9", Quantity: 1}))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPostSale_SinCajero(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.PostSale(context.Background(), "", draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// ── stock y atomicidad ────────────────────────────────────────────────────────

func TestPostSale_StockInsuficiente(t *testing.T) {
	uc, runner, _ := setup()

	_, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 50}))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 10, runner.st.stock["p7"], "stock intacto tras el rechazo")
	assert.Empty(t, runner.st.salesByID)
}

func TestPostSale_RollbackCompletoEnVentaMultilinea(t *testing.T) {
	uc, runner, _ := setup()

	// La primera línea alcanza; la segunda no (p8 tiene stock 1). Nada debe
	// quedar aplicado: ni cabecera, ni líneas, ni el descuento de p7.
	_, err := uc.PostSale(context.Background(), cashierID, draft(
		dto.PostSaleItemRequest{ProductID: "p7", Quantity: 2},
		dto.PostSaleItemRequest{ProductID: "p8", Quantity: 5},
	))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 10, runner.st.stock["p7"], "el descuento de la primera línea debe revertirse")
	assert.Equal(t, 1, runner.st.stock["p8"])
	assert.Empty(t, runner.st.salesByID)
	assert.Empty(t, runner.st.items)
}

// ── numeración bajo carrera ───────────────────────────────────────────────────

func TestPostSale_ReintentaAnteNumeroDuplicado(t *testing.T) {
	uc, runner, _ := setup()
	runner.forceDup = 1

	resp, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	require.NoError(t, err, "un duplicado aislado debe resolverse con reintento")
	assert.Equal(t, "INV000001", resp.InvoiceNo)
	assert.Len(t, runner.st.salesByID, 1, "exactamente una venta persistida")
	assert.Equal(t, 9, runner.st.stock["p7"], "el intento fallido no descuenta stock")
}

func TestPostSale_AgotadosLosReintentosSurfaceaDuplicado(t *testing.T) {
	uc, runner, _ := setup()
	runner.forceDup = 10 // más que los reintentos del motor

	_, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	assert.True(t, errors.Is(err, domain.ErrDuplicateInvoice))
	assert.Empty(t, runner.st.salesByID, "sin efectos tras agotar reintentos")
	assert.Equal(t, 10, runner.st.stock["p7"])
}

func TestPostSale_ConcurrentesObtienenNumerosDistintos(t *testing.T) {
	uc, runner, _ := setup()

	const n = 8
	var wg sync.WaitGroup
	invoices := make(chan string, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
			if err != nil {
				errs <- err
				return
			}
			invoices <- resp.InvoiceNo
		}()
	}
	wg.Wait()
	close(invoices)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := map[string]bool{}
	for no := range invoices {
		assert.False(t, seen[no], "número de factura repetido: %s", no)
		seen[no] = true
	}
	assert.Len(t, seen, n, "cada venta concurrente debe obtener su propio número")
	assert.Len(t, runner.st.salesByID, n)
	assert.Equal(t, 10-n, runner.st.stock["p7"], "el stock baja exactamente una unidad por venta")
}

func TestPostSale_UltimoNumeroIlegibleAborta(t *testing.T) {
	uc, runner, _ := setup()
	corrupted := &entity.Sale{ID: "s-legacy", InvoiceNo: "INVX00042"}
	runner.st.salesByID[corrupted.ID] = corrupted
	runner.st.salesByInvoice[corrupted.InvoiceNo] = corrupted

	_, err := uc.PostSale(context.Background(), cashierID, draft(dto.PostSaleItemRequest{ProductID: "p7", Quantity: 1}))
	assert.True(t, errors.Is(err, domain.ErrInvoiceFormat),
		"un último número ilegible debe abortar, nunca fabricar un número")
	assert.Equal(t, 10, runner.st.stock["p7"])
}
