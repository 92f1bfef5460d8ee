package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para reportes. Cada consulta re-deriva el
// día local desde su propio campo de fecha con AT TIME ZONE + to_char, y
// compara como strings YYYY-MM-DD; así el corte de día no depende de la zona
// del servidor. Un límite vacío desactiva ese lado del filtro.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas de reporte.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// localDay expresión SQL del día local de una columna timestamptz.
// Los parámetros $1..$3 de toda consulta de reporte son tz, fromDay, toDay.
func localDay(col string) string {
	return `to_char(` + col + ` AT TIME ZONE $1, 'YYYY-MM-DD')`
}

func inPeriod(col string) string {
	d := localDay(col)
	return `($2 = '' OR ` + d + ` >= $2) AND ($3 = '' OR ` + d + ` <= $3)`
}

func (r *ReportRepo) ListActiveProducts(ctx context.Context) ([]repository.ProductInfoRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.status = 'active'
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report products: %w", err)
	}
	defer rows.Close()
	out := []repository.ProductInfoRow{}
	for rows.Next() {
		var row repository.ProductInfoRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan report product: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListDeliveredStock(ctx context.Context, p repository.ReportPeriod) ([]repository.DeliveredStockRow, error) {
	query := `
		SELECT product_id, COALESCE(SUM(delivered_quantity), 0), COALESCE(MAX(acquisition_price), 0)
		FROM stocks
		WHERE is_deleted = false AND status = 'delivered' AND ` + inPeriod("delivered_date") + `
		GROUP BY product_id`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report delivered stock: %w", err)
	}
	defer rows.Close()
	out := []repository.DeliveredStockRow{}
	for rows.Next() {
		var row repository.DeliveredStockRow
		if err := rows.Scan(&row.ProductID, &row.Quantity, &row.AcquisitionPrice); err != nil {
			return nil, fmt.Errorf("scan delivered stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListAdjustmentTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ReasonQtyRow, error) {
	query := `
		SELECT product_id, reason, COALESCE(SUM(ABS(change)), 0)
		FROM stock_adjustments
		WHERE ` + inPeriod("date") + `
		GROUP BY product_id, reason`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report adjustment totals: %w", err)
	}
	return scanReasonQty(rows)
}

func (r *ReportRepo) ListAdjustmentChanges(ctx context.Context, p repository.ReportPeriod) ([]repository.SignedChangeRow, error) {
	query := `
		SELECT product_id, reason, COALESCE(SUM(change), 0)
		FROM stock_adjustments
		WHERE ` + inPeriod("date") + `
		GROUP BY product_id, reason`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report adjustment changes: %w", err)
	}
	defer rows.Close()
	out := []repository.SignedChangeRow{}
	for rows.Next() {
		var row repository.SignedChangeRow
		if err := rows.Scan(&row.ProductID, &row.Reason, &row.Change); err != nil {
			return nil, fmt.Errorf("scan adjustment change: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListRefundTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ReasonQtyRow, error) {
	query := `
		SELECT product_id, reason, COALESCE(SUM(quantity), 0)
		FROM refunds
		WHERE is_deleted = false AND ` + inPeriod("refunded_at") + `
		GROUP BY product_id, reason`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report refund totals: %w", err)
	}
	return scanReasonQty(rows)
}

// ListSoldTotals cuenta líneas no borradas cuyo padre no está borrado y cae
// en el período. Incluye líneas devueltas: lo vendido se mide al momento de
// la venta.
func (r *ReportRepo) ListSoldTotals(ctx context.Context, p repository.ReportPeriod) ([]repository.ProductQtyRow, error) {
	query := `
		SELECT ti.product_id, COALESCE(SUM(ti.quantity), 0)
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		WHERE ti.is_deleted = false AND t.is_deleted = false AND ` + inPeriod("t.created_at") + `
		GROUP BY ti.product_id`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report sold totals: %w", err)
	}
	defer rows.Close()
	out := []repository.ProductQtyRow{}
	for rows.Next() {
		var row repository.ProductQtyRow
		if err := rows.Scan(&row.ProductID, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan sold total: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) SnapshotAt(ctx context.Context, cutoff time.Time) ([]repository.StockSnapshotRow, error) {
	query := `
		SELECT DISTINCT ON (product_id) product_id, quantity, acquisition_price
		FROM inventory_records
		WHERE date_recorded <= $1
		ORDER BY product_id, date_recorded DESC`
	rows, err := r.q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("report snapshot: %w", err)
	}
	defer rows.Close()
	out := []repository.StockSnapshotRow{}
	for rows.Next() {
		var row repository.StockSnapshotRow
		if err := rows.Scan(&row.ProductID, &row.Quantity, &row.AcquisitionPrice); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListCurrentInventory(ctx context.Context) ([]repository.CurrentInventoryRow, error) {
	query := `
		SELECT i.product_id, COALESCE(p.sku, ''), COALESCE(p.name, ''), COALESCE(c.name, ''),
		       i.quantity, i.acquisition_price, COALESCE(p.low_stock_threshold, 0)
		FROM inventories i
		LEFT JOIN products p ON p.id = i.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE i.status = 'active'
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report current inventory: %w", err)
	}
	defer rows.Close()
	out := []repository.CurrentInventoryRow{}
	for rows.Next() {
		var row repository.CurrentInventoryRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.CategoryName,
			&row.Quantity, &row.AcquisitionPrice, &row.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("scan current inventory: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CurrentInventoryValue valúa el inventario activo ACTUAL. No recibe período
// a propósito: es una valuación presente, no histórica.
func (r *ReportRepo) CurrentInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity * acquisition_price), 0)
		FROM inventories WHERE status = 'active'`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("report inventory value: %w", err)
	}
	return total, nil
}

// ListSaleItems devuelve líneas vendidas con referencias resueltas, en orden
// cronológico. El orden importa: los empates del top de vendedores se
// resuelven por primera aparición.
func (r *ReportRepo) ListSaleItems(ctx context.Context, p repository.ReportPeriod) ([]repository.SaleItemRow, error) {
	query := `
		SELECT ti.product_id, COALESCE(pr.sku, ''), COALESCE(pr.name, ''), COALESCE(c.name, ''),
		       ti.quantity, ti.price, COALESCE(pr.acquisition_price, 0),
		       ti.net_amount, ti.vat_amount, ti.total_amount, t.created_at
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		LEFT JOIN products pr ON pr.id = ti.product_id
		LEFT JOIN categories c ON c.id = pr.category_id
		WHERE ti.is_deleted = false AND ti.is_refunded = false AND t.is_deleted = false
		  AND ` + inPeriod("t.created_at") + `
		ORDER BY t.created_at, ti.created_at`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report sale items: %w", err)
	}
	defer rows.Close()
	out := []repository.SaleItemRow{}
	for rows.Next() {
		var row repository.SaleItemRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.CategoryName,
			&row.Quantity, &row.Price, &row.AcquisitionPrice,
			&row.NetAmount, &row.VatAmount, &row.TotalAmount, &row.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListSaleHeaders(ctx context.Context, p repository.ReportPeriod) ([]repository.SaleHeaderRow, error) {
	query := `
		SELECT id, receipt_num, ` + localDay("created_at") + `, total_qty,
		       gross_amount, vat_amount, total_amount, total_discount, created_at
		FROM transactions
		WHERE is_deleted = false AND ` + inPeriod("created_at") + `
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report sale headers: %w", err)
	}
	defer rows.Close()
	out := []repository.SaleHeaderRow{}
	for rows.Next() {
		var row repository.SaleHeaderRow
		if err := rows.Scan(&row.TransactionID, &row.ReceiptNum, &row.Day, &row.Quantity,
			&row.GrossAmount, &row.VatAmount, &row.TotalAmount, &row.TotalDiscount, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale header: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListOrderRows solo órdenes entregadas, con el mismo bucketing por día
// local de entrega que usa ListDeliveredStock para las reposiciones.
func (r *ReportRepo) ListOrderRows(ctx context.Context, p repository.ReportPeriod) ([]repository.OrderReportRow, error) {
	query := `
		SELECT COALESCE(pr.sku, ''), COALESCE(pr.name, ''), COALESCE(sup.name, ''),
		       s.order_quantity, s.delivered_quantity, s.acquisition_price, s.status,
		       ` + localDay("s.delivery_date") + `, ` + localDay("s.delivered_date") + `
		FROM stocks s
		LEFT JOIN products pr ON pr.id = s.product_id
		LEFT JOIN suppliers sup ON sup.id = s.supplier_id
		WHERE s.is_deleted = false AND s.status = 'delivered' AND ` + inPeriod("s.delivered_date") + `
		ORDER BY s.delivered_date`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report order rows: %w", err)
	}
	defer rows.Close()
	out := []repository.OrderReportRow{}
	for rows.Next() {
		var row repository.OrderReportRow
		if err := rows.Scan(&row.SKU, &row.ProductName, &row.SupplierName,
			&row.OrderQuantity, &row.DeliveredQuantity, &row.AcquisitionPrice,
			&row.Status, &row.DeliveryDay, &row.Day); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListRefundRows(ctx context.Context, p repository.ReportPeriod) ([]repository.RefundReportRow, error) {
	query := `
		SELECT COALESCE(pr.sku, ''), COALESCE(pr.name, ''), rf.quantity,
		       rf.refund_price, rf.reason, ` + localDay("rf.refunded_at") + `
		FROM refunds rf
		LEFT JOIN products pr ON pr.id = rf.product_id
		WHERE rf.is_deleted = false AND ` + inPeriod("rf.refunded_at") + `
		ORDER BY rf.refunded_at`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report refund rows: %w", err)
	}
	defer rows.Close()
	out := []repository.RefundReportRow{}
	for rows.Next() {
		var row repository.RefundReportRow
		if err := rows.Scan(&row.SKU, &row.ProductName, &row.Quantity,
			&row.Amount, &row.Reason, &row.Day); err != nil {
			return nil, fmt.Errorf("scan refund row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListAdjustmentRows(ctx context.Context, p repository.ReportPeriod) ([]repository.AdjustmentReportRow, error) {
	query := `
		SELECT COALESCE(pr.sku, ''), COALESCE(pr.name, ''), a.change,
		       a.previous_quantity, a.adjusted_quantity, a.reason, a.note,
		       ` + localDay("a.date") + `
		FROM stock_adjustments a
		LEFT JOIN products pr ON pr.id = a.product_id
		WHERE ` + inPeriod("a.date") + `
		ORDER BY a.date`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report adjustment rows: %w", err)
	}
	defer rows.Close()
	out := []repository.AdjustmentReportRow{}
	for rows.Next() {
		var row repository.AdjustmentReportRow
		if err := rows.Scan(&row.SKU, &row.ProductName, &row.Change,
			&row.PreviousQuantity, &row.AdjustedQuantity, &row.Reason,
			&row.Note, &row.Day); err != nil {
			return nil, fmt.Errorf("scan adjustment row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportRepo) ListSnapshotRows(ctx context.Context, p repository.ReportPeriod) ([]repository.SnapshotBreakdownRow, error) {
	query := `
		SELECT COALESCE(pr.sku, ''), COALESCE(pr.name, ''), ir.quantity,
		       ir.prev_quantity, ir.acquisition_price, ` + localDay("ir.date_recorded") + `
		FROM inventory_records ir
		LEFT JOIN products pr ON pr.id = ir.product_id
		WHERE ` + inPeriod("ir.date_recorded") + `
		ORDER BY ir.date_recorded`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay)
	if err != nil {
		return nil, fmt.Errorf("report snapshot rows: %w", err)
	}
	defer rows.Close()
	out := []repository.SnapshotBreakdownRow{}
	for rows.Next() {
		var row repository.SnapshotBreakdownRow
		if err := rows.Scan(&row.SKU, &row.ProductName, &row.Quantity,
			&row.PrevQuantity, &row.AcquisitionPrice, &row.Day); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListProductReceives entregas de un producto en el período. El monto es el
// costo total de la entrega; la referencia, el proveedor.
func (r *ReportRepo) ListProductReceives(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	query := `
		SELECT ` + localDay("s.delivered_date") + `, s.delivered_quantity,
		       s.delivered_quantity * s.acquisition_price, COALESCE(sup.name, '')
		FROM stocks s
		LEFT JOIN suppliers sup ON sup.id = s.supplier_id
		WHERE s.is_deleted = false AND s.status = 'delivered' AND s.product_id = $4
		  AND ` + inPeriod("s.delivered_date") + `
		ORDER BY s.delivered_date`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay, productID)
	if err != nil {
		return nil, fmt.Errorf("report product receives: %w", err)
	}
	return scanMovements(rows)
}

// ListProductSales líneas vendidas de un producto en el período, con el
// número de recibo del padre.
func (r *ReportRepo) ListProductSales(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	query := `
		SELECT ` + localDay("t.created_at") + `, ti.quantity, ti.total_amount, t.receipt_num
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		WHERE ti.is_deleted = false AND t.is_deleted = false AND ti.product_id = $4
		  AND ` + inPeriod("t.created_at") + `
		ORDER BY t.created_at, ti.created_at`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay, productID)
	if err != nil {
		return nil, fmt.Errorf("report product sales: %w", err)
	}
	return scanMovements(rows)
}

// ListProductRefunds devoluciones de un producto en el período, con su razón.
func (r *ReportRepo) ListProductRefunds(ctx context.Context, productID string, p repository.ReportPeriod) ([]repository.ProductMovementRow, error) {
	query := `
		SELECT ` + localDay("refunded_at") + `, quantity, refund_price, reason
		FROM refunds
		WHERE is_deleted = false AND product_id = $4 AND ` + inPeriod("refunded_at") + `
		ORDER BY refunded_at`
	rows, err := r.q.Query(ctx, query, p.Timezone, p.FromDay, p.ToDay, productID)
	if err != nil {
		return nil, fmt.Errorf("report product refunds: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}) ([]repository.ProductMovementRow, error) {
	defer rows.Close()
	out := []repository.ProductMovementRow{}
	for rows.Next() {
		var row repository.ProductMovementRow
		if err := rows.Scan(&row.Day, &row.Quantity, &row.Amount, &row.Reference); err != nil {
			return nil, fmt.Errorf("scan product movement: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanReasonQty(rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}) ([]repository.ReasonQtyRow, error) {
	defer rows.Close()
	out := []repository.ReasonQtyRow{}
	for rows.Next() {
		var row repository.ReasonQtyRow
		if err := rows.Scan(&row.ProductID, &row.Reason, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan reason qty: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
