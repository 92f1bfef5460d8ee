package sales_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos que usan los casos de uso de ventas
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn directo sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	repos repository.TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.TxRepos) error) error {
	return fn(f.repos)
}

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

type fakeTransactionRepo struct {
	seq     int64
	created []*entity.Transaction
	items   map[string]*entity.TransactionItem
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction, items []*entity.TransactionItem) error {
	f.created = append(f.created, tx)
	if f.items == nil {
		f.items = map[string]*entity.TransactionItem{}
	}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return nil
}
func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	for _, t := range f.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (f *fakeTransactionRepo) GetByReceiptNum(ctx context.Context, receiptNum string) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) ListItems(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) GetItemByID(ctx context.Context, itemID string) (*entity.TransactionItem, error) {
	return f.items[itemID], nil
}
func (f *fakeTransactionRepo) MarkItemRefunded(ctx context.Context, itemID string) error {
	it, ok := f.items[itemID]
	if !ok || it.IsRefunded {
		return domain.ErrConflict
	}
	it.IsRefunded = true
	return nil
}
func (f *fakeTransactionRepo) NextReceiptNum(ctx context.Context) (string, error) {
	f.seq++
	return fmt.Sprintf("FNS-%09d", f.seq), nil
}
func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeRefundRepo struct {
	created []*entity.Refund
}

func (f *fakeRefundRepo) Create(ctx context.Context, refund *entity.Refund) error {
	f.created = append(f.created, refund)
	return nil
}
func (f *fakeRefundRepo) GetByID(ctx context.Context, id string) (*entity.Refund, error) {
	return nil, nil
}
func (f *fakeRefundRepo) GetByTransactionItemID(ctx context.Context, itemID string) (*entity.Refund, error) {
	return nil, nil
}
func (f *fakeRefundRepo) List(ctx context.Context, limit, offset int) ([]*entity.Refund, error) {
	return f.created, nil
}

// salesFixture arma el juego de fakes compartido por los tests de venta y
// devolución.
type salesFixture struct {
	products  *fakeProductRepo
	inventory *fakeInventoryRepo
	records   *fakeRecordRepo
	txns      *fakeTransactionRepo
	refunds   *fakeRefundRepo
	runner    *fakeTxRunner
}

func newSalesFixture() *salesFixture {
	fx := &salesFixture{
		products:  &fakeProductRepo{products: map[string]*entity.Product{}},
		inventory: &fakeInventoryRepo{byProduct: map[string]*entity.Inventory{}},
		records:   &fakeRecordRepo{},
		txns:      &fakeTransactionRepo{items: map[string]*entity.TransactionItem{}},
		refunds:   &fakeRefundRepo{},
	}
	fx.runner = &fakeTxRunner{repos: repository.TxRepos{
		Products:     fx.products,
		Inventory:    fx.inventory,
		Records:      fx.records,
		Transactions: fx.txns,
		Refunds:      fx.refunds,
	}}
	return fx
}

// addProduct registra un producto activo con stock inicial.
func (fx *salesFixture) addProduct(id, vatType string, price decimal.Decimal, stock int64) {
	fx.products.products[id] = &entity.Product{
		ID:      id,
		SKU:     "SKU-" + id,
		Name:    "Producto " + id,
		Price:   price,
		VatType: vatType,
		Status:  entity.ProductStatusActive,
	}
	fx.inventory.byProduct[id] = &entity.Inventory{
		ID:        "inv-" + id,
		ProductID: id,
		Quantity:  stock,
		Status:    entity.InventoryStatusActive,
	}
}
