package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	repos repository.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.TxRepos) error) error {
	return fn(f.repos)
}

type fakeStockRepo struct {
	byID      map[string]*entity.Stock
	delivered []*entity.Stock

	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeStockRepo) Create(ctx context.Context, s *entity.Stock) error {
	f.byID[s.ID] = s
	return nil
}
func (f *fakeStockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	return f.byID[id], nil
}
func (f *fakeStockRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Stock, error) {
	return nil, nil
}
func (f *fakeStockRepo) ListDeliveredBetween(ctx context.Context, from, to time.Time) ([]*entity.Stock, error) {
	f.lastFrom = from
	f.lastTo = to
	return f.delivered, nil
}
func (f *fakeStockRepo) Update(ctx context.Context, s *entity.Stock) error { return nil }
func (f *fakeStockRepo) Delete(ctx context.Context, id string) error       { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Search(ctx context.Context, q string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }
func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error         { return nil }

type fakeInventoryRepo struct {
	byProduct map[string]*entity.Inventory
}

func (f *fakeInventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error { return nil }
func (f *fakeInventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error) {
	return f.byProduct[productID], nil
}
func (f *fakeInventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) AdjustQuantity(ctx context.Context, productID string, delta int64) (*entity.Inventory, error) {
	inv, ok := f.byProduct[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if inv.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	inv.Quantity += delta
	return inv, nil
}
func (f *fakeInventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error { return nil }
func (f *fakeInventoryRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeRecordRepo struct {
	records []*entity.InventoryRecord
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	f.records = append(f.records, rec)
	return nil
}
func (f *fakeRecordRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	return nil, nil
}
func (f *fakeRecordRepo) LatestBefore(ctx context.Context, cutoff time.Time) (map[string]*entity.InventoryRecord, error) {
	return nil, nil
}

type stockFixture struct {
	stocks    *fakeStockRepo
	products  *fakeProductRepo
	inventory *fakeInventoryRepo
	records   *fakeRecordRepo
	uc        *usecase.StockUseCase
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	fx := &stockFixture{
		stocks:    &fakeStockRepo{byID: map[string]*entity.Stock{}},
		products:  &fakeProductRepo{products: map[string]*entity.Product{}},
		inventory: &fakeInventoryRepo{byProduct: map[string]*entity.Inventory{}},
		records:   &fakeRecordRepo{},
	}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		Products:  fx.products,
		Inventory: fx.inventory,
		Records:   fx.records,
		Stocks:    fx.stocks,
	}}
	fx.uc = usecase.NewStockUseCase(fx.stocks, fx.products, runner, "Asia/Manila")
	return fx
}

func (fx *stockFixture) addProduct(id string, stock int64) {
	fx.products.products[id] = &entity.Product{
		ID: id, SKU: "SKU-" + id, Name: "Producto " + id,
		Status: entity.ProductStatusActive,
	}
	fx.inventory.byProduct[id] = &entity.Inventory{
		ID: "inv-" + id, ProductID: id, Quantity: stock,
		Status: entity.InventoryStatusActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Deliver / Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestStockDeliver_SumaInventarioYActualizaCosto(t *testing.T) {
	fx := newStockFixture(t)
	fx.addProduct("p1", 5)

	placed, err := fx.uc.Place(context.Background(), dto.CreateStockRequest{
		ProductID: "p1", SupplierID: "s1", OrderQuantity: 20,
		AcquisitionPrice: dec("32.50"), DeliveryDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusPending, placed.Status)

	// Entrega sin cantidad explícita: se asume la orden completa.
	resp, err := fx.uc.Deliver(context.Background(), placed.ID, dto.DeliverStockRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.StockStatusDelivered, resp.Status)
	assert.EqualValues(t, 20, resp.DeliveredQuantity)
	require.NotNil(t, resp.DeliveredDate)

	assert.EqualValues(t, 25, fx.inventory.byProduct["p1"].Quantity)
	assert.True(t, fx.inventory.byProduct["p1"].AcquisitionPrice.Equal(dec("32.50")),
		"el costo vigente pasa a ser el de la entrega")
	assert.True(t, fx.products.products["p1"].AcquisitionPrice.Equal(dec("32.50")))
	require.Len(t, fx.records.records, 1)
	assert.EqualValues(t, 5, fx.records.records[0].PrevQuantity)
	assert.EqualValues(t, 25, fx.records.records[0].Quantity)
}

func TestStockDeliver_EntregaParcial(t *testing.T) {
	fx := newStockFixture(t)
	fx.addProduct("p1", 0)

	placed, err := fx.uc.Place(context.Background(), dto.CreateStockRequest{
		ProductID: "p1", SupplierID: "s1", OrderQuantity: 10,
		AcquisitionPrice: dec("10"), DeliveryDate: time.Now(),
	})
	require.NoError(t, err)

	resp, err := fx.uc.Deliver(context.Background(), placed.ID, dto.DeliverStockRequest{DeliveredQuantity: 7})
	require.NoError(t, err)

	assert.EqualValues(t, 7, resp.DeliveredQuantity)
	assert.EqualValues(t, 7, fx.inventory.byProduct["p1"].Quantity)
}

// delivered y cancelled son terminales: la transición ocurre una sola vez.
func TestStockDeliver_TransicionTerminal(t *testing.T) {
	fx := newStockFixture(t)
	fx.addProduct("p1", 0)

	placed, err := fx.uc.Place(context.Background(), dto.CreateStockRequest{
		ProductID: "p1", SupplierID: "s1", OrderQuantity: 10,
		AcquisitionPrice: dec("10"), DeliveryDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), placed.ID, dto.DeliverStockRequest{})
	require.NoError(t, err)

	_, err = fx.uc.Deliver(context.Background(), placed.ID, dto.DeliverStockRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden entregada no se entrega de nuevo")

	_, err = fx.uc.Cancel(context.Background(), placed.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden entregada no se cancela")
}

func TestStockCancel_SoloPending(t *testing.T) {
	fx := newStockFixture(t)
	fx.addProduct("p1", 0)

	placed, err := fx.uc.Place(context.Background(), dto.CreateStockRequest{
		ProductID: "p1", SupplierID: "s1", OrderQuantity: 3,
		AcquisitionPrice: dec("5"), DeliveryDate: time.Now(),
	})
	require.NoError(t, err)

	resp, err := fx.uc.Cancel(context.Background(), placed.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusCancelled, resp.Status)

	_, err = fx.uc.Cancel(context.Background(), placed.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.EqualValues(t, 0, fx.inventory.byProduct["p1"].Quantity,
		"cancelar nunca toca el inventario")
}

// ──────────────────────────────────────────────────────────────────────────────
// OrderSummary: agrupación semanal lunes a domingo en la zona local
// ──────────────────────────────────────────────────────────────────────────────

func deliveredStock(productID string, deliveredAt time.Time, qty int64, price string) *entity.Stock {
	return &entity.Stock{
		ID: "st-" + deliveredAt.Format("20060102"), ProductID: productID,
		DeliveredQuantity: qty, AcquisitionPrice: dec(price),
		DeliveredDate: &deliveredAt, Status: entity.StockStatusDelivered,
	}
}

func TestOrderSummary_SemanaLunesADomingo(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	fx := newStockFixture(t)
	// Domingo 2025-07-13 cierra la semana del lunes 7; el lunes 14 abre otra.
	fx.stocks.delivered = []*entity.Stock{
		deliveredStock("p1", time.Date(2025, 7, 13, 18, 0, 0, 0, manila), 10, "5"),
		deliveredStock("p1", time.Date(2025, 7, 14, 9, 0, 0, 0, manila), 4, "5"),
		deliveredStock("p2", time.Date(2025, 7, 16, 12, 0, 0, 0, manila), 6, "2.50"),
	}

	rows, err := fx.uc.OrderSummary(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-07-07", rows[0].WeekStart)
	assert.Equal(t, "2025-07-13", rows[0].WeekEnd)
	assert.EqualValues(t, 1, rows[0].OrderCount)
	assert.EqualValues(t, 10, rows[0].TotalOrdered)
	assert.True(t, rows[0].TotalCost.Equal(dec("50")))

	assert.Equal(t, "2025-07-14", rows[1].WeekStart)
	assert.Equal(t, "2025-07-20", rows[1].WeekEnd)
	assert.EqualValues(t, 2, rows[1].OrderCount)
	assert.EqualValues(t, 10, rows[1].TotalOrdered)
	assert.True(t, rows[1].TotalCost.Equal(dec("35")), "4x5 + 6x2.50")
}

// Órdenes sin fecha real de entrega se ignoran en el resumen.
// Sin límite superior el resumen no debe filtrar: el cero de time.Time no
// puede llegar a la consulta como tope, o ninguna entrega calificaría.
func TestOrderSummary_RangoVacioNoFiltra(t *testing.T) {
	fx := newStockFixture(t)

	_, err := fx.uc.OrderSummary(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, fx.stocks.lastFrom.IsZero(), "el límite inferior vacío queda abierto")
	assert.True(t, fx.stocks.lastTo.After(time.Now()), "el tope por defecto debe cubrir hasta hoy")
}

func TestOrderSummary_IgnoraSinFechaDeEntrega(t *testing.T) {
	fx := newStockFixture(t)
	fx.stocks.delivered = []*entity.Stock{
		{ID: "st-1", ProductID: "p1", DeliveredQuantity: 5, AcquisitionPrice: dec("1"),
			Status: entity.StockStatusDelivered, DeliveredDate: nil},
	}

	rows, err := fx.uc.OrderSummary(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
