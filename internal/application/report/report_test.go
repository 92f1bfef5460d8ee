package report_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// fakeReportRepo implementación en memoria de repository.ReportRepository
// para los tests de los casos de uso de reportes.
type fakeReportRepo struct {
	products   []repository.ProductInfoRow
	delivered  []repository.DeliveredStockRow
	adjTotals  []repository.ReasonQtyRow
	adjChanges []repository.SignedChangeRow
	refunds    []repository.ReasonQtyRow
	sold       []repository.ProductQtyRow
	snapshot   []repository.StockSnapshotRow
	current    []repository.CurrentInventoryRow
	totalValue decimal.Decimal
	items      []repository.SaleItemRow
	headers    []repository.SaleHeaderRow
	receives   []repository.ProductMovementRow
	salesHist  []repository.ProductMovementRow
	refundHist []repository.ProductMovementRow
	orders     []repository.OrderReportRow
	refundRows []repository.RefundReportRow
	adjRows    []repository.AdjustmentReportRow
	snapRows   []repository.SnapshotBreakdownRow

	err error // si está seteado, toda consulta falla

	// períodos y cortes recibidos, para verificar el plumbing
	lastPeriod    repository.ReportPeriod
	lastCutoff    time.Time
	lastProductID string
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (f *fakeReportRepo) ListActiveProducts(ctx context.Context) ([]repository.ProductInfoRow, error) {
	return f.products, f.err
}

func (f *fakeReportRepo) ListDeliveredStock(ctx context.Context, p repository.ReportPeriod) ([]repository.DeliveredStockRow, error) {
	f.lastPeriod = p
	return f.delivered, f.err
}

func (f *fakeReportRepo) ListAdjustmentTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ReasonQtyRow, error) {
	return f.adjTotals, f.err
}

func (f *fakeReportRepo) ListAdjustmentChanges(ctx context.Context, p repository.ReportPeriod) ([]repository.SignedChangeRow, error) {
	return f.adjChanges, f.err
}

func (f *fakeReportRepo) ListRefundTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ReasonQtyRow, error) {
	return f.refunds, f.err
}

func (f *fakeReportRepo) ListSoldTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ProductQtyRow, error) {
	return f.sold, f.err
}

func (f *fakeReportRepo) SnapshotAt(ctx context.Context, cutoff time.Time) ([]repository.StockSnapshotRow, error) {
	f.lastCutoff = cutoff
	return f.snapshot, f.err
}

func (f *fakeReportRepo) ListCurrentInventory(ctx context.Context) ([]repository.CurrentInventoryRow, error) {
	return f.current, f.err
}

func (f *fakeReportRepo) CurrentInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	return f.totalValue, f.err
}

func (f *fakeReportRepo) ListSaleItems(ctx context.Context, p repository.ReportPeriod) ([]repository.SaleItemRow, error) {
	f.lastPeriod = p
	return f.items, f.err
}

func (f *fakeReportRepo) ListSaleHeaders(ctx context.Context, p repository.ReportPeriod) ([]repository.SaleHeaderRow, error) {
	return f.headers, f.err
}

func (f *fakeReportRepo) ListOrderRows(ctx context.Context, p repository.ReportPeriod) ([]repository.OrderReportRow, error) {
	return f.orders, f.err
}

func (f *fakeReportRepo) ListRefundRows(ctx context.Context, p repository.ReportPeriod) ([]repository.RefundReportRow, error) {
	return f.refundRows, f.err
}

func (f *fakeReportRepo) ListAdjustmentRows(ctx context.Context, p repository.ReportPeriod) ([]repository.AdjustmentReportRow, error) {
	return f.adjRows, f.err
}

func (f *fakeReportRepo) ListSnapshotRows(ctx context.Context, p repository.ReportPeriod) ([]repository.SnapshotBreakdownRow, error) {
	return f.snapRows, f.err
}

func (f *fakeReportRepo) ListProductReceives(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	f.lastProductID = productID
	f.lastPeriod = p
	return f.receives, f.err
}

func (f *fakeReportRepo) ListProductSales(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	return f.salesHist, f.err
}

func (f *fakeReportRepo) ListProductRefunds(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	return f.refundHist, f.err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
