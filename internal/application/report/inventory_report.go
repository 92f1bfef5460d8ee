package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// InventoryReportUseCase reconcilia los cuatro ledgers de movimiento
// (entregas, ventas, devoluciones, ajustes) más el historial de fotos en un
// reporte por producto. Cada métrica sale de su propio ledger a propósito:
// así cada columna del reporte es auditable contra su fuente.
type InventoryReportUseCase struct {
	repo             repository.ReportRepository
	tz               string
	defaultThreshold int64
}

// NewInventoryReportUseCase construye el caso de uso. tz es la zona IANA del
// bucketing por día local; defaultThreshold aplica cuando el producto no
// define su propio umbral de stock bajo.
func NewInventoryReportUseCase(repo repository.ReportRepository, tz string, defaultThreshold int64) *InventoryReportUseCase {
	return &InventoryReportUseCase{repo: repo, tz: tz, defaultThreshold: defaultThreshold}
}

// movementData resultados de los ledgers de movimiento del período.
type movementData struct {
	delivered  []repository.DeliveredStockRow
	adjTotals  []repository.ReasonQtyRow
	adjChanges []repository.SignedChangeRow
	refunds    []repository.ReasonQtyRow
	sold       []repository.ProductQtyRow
	err        error
}

// tableData tablas de soporte del reporte: órdenes, devoluciones, ajustes,
// fotos del rango e inventario actual para la tabla de stock bajo.
type tableData struct {
	orders   []repository.OrderReportRow
	refunds  []repository.RefundReportRow
	adjusts  []repository.AdjustmentReportRow
	breakout []repository.SnapshotBreakdownRow
	current  []repository.CurrentInventoryRow
	err      error
}

// Generate construye el reporte del rango pedido. La ausencia de registros
// en cualquier ledger produce ceros, nunca un error; un rango vacío o
// inválido se trata como "sin filtro".
func (uc *InventoryReportUseCase) Generate(ctx context.Context, in dto.ReportRangeRequest) (*dto.InventoryReportResponse, error) {
	p := ParsePeriod(uc.tz, in.From, in.To)
	cutoff := Cutoff(p, time.Now())

	type productsResult struct {
		rows []repository.ProductInfoRow
		err  error
	}
	type snapshotResult struct {
		rows []repository.StockSnapshotRow
		err  error
	}
	type valueResult struct {
		total decimal.Decimal
		err   error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementData, 1)
	snapshotCh := make(chan snapshotResult, 1)
	valueCh := make(chan valueResult, 1)
	tablesCh := make(chan tableData, 1)

	go func() {
		rows, err := uc.repo.ListActiveProducts(ctx)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		movementsCh <- uc.fetchMovements(ctx, p)
	}()
	go func() {
		rows, err := uc.repo.SnapshotAt(ctx, cutoff)
		snapshotCh <- snapshotResult{rows, err}
	}()
	go func() {
		total, err := uc.repo.CurrentInventoryValue(ctx)
		valueCh <- valueResult{total, err}
	}()
	go func() {
		tablesCh <- uc.fetchTables(ctx, p)
	}()

	products := <-productsCh
	movements := <-movementsCh
	snapshot := <-snapshotCh
	value := <-valueCh
	tables := <-tablesCh

	if products.err != nil {
		return nil, fmt.Errorf("reporte inventario: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("reporte inventario: movimientos: %w", movements.err)
	}
	if snapshot.err != nil {
		return nil, fmt.Errorf("reporte inventario: fotos: %w", snapshot.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("reporte inventario: valuación: %w", value.err)
	}
	if tables.err != nil {
		return nil, fmt.Errorf("reporte inventario: tablas: %w", tables.err)
	}

	rows := reconcile(products.rows, movements, snapshot.rows)
	resp := &dto.InventoryReportResponse{
		From:                p.FromDay,
		To:                  p.ToDay,
		Rows:                rows,
		TotalInventoryValue: value.total,
	}
	for _, s := range movements.sold {
		resp.TotalQuantitySold += s.Quantity
	}
	uc.buildTables(resp, tables)
	return resp, nil
}

// fetchTables consulta las tablas de soporte del reporte en secuencia.
func (uc *InventoryReportUseCase) fetchTables(ctx context.Context, p repository.ReportPeriod) tableData {
	var t tableData
	if t.orders, t.err = uc.repo.ListOrderRows(ctx, p); t.err != nil {
		return t
	}
	if t.refunds, t.err = uc.repo.ListRefundRows(ctx, p); t.err != nil {
		return t
	}
	if t.adjusts, t.err = uc.repo.ListAdjustmentRows(ctx, p); t.err != nil {
		return t
	}
	if t.breakout, t.err = uc.repo.ListSnapshotRows(ctx, p); t.err != nil {
		return t
	}
	t.current, t.err = uc.repo.ListCurrentInventory(ctx)
	return t
}

// buildTables vuelca las tablas de soporte al reporte. Referencias rotas
// caen al placeholder, nunca a un error.
func (uc *InventoryReportUseCase) buildTables(resp *dto.InventoryReportResponse, t tableData) {
	resp.Orders = make([]dto.InventoryOrderRow, len(t.orders))
	for i, o := range t.orders {
		resp.Orders[i] = dto.InventoryOrderRow{
			Date:              o.Day,
			DeliveryDate:      o.DeliveryDay,
			SKU:               orPlaceholder(o.SKU),
			ProductName:       orPlaceholder(o.ProductName),
			SupplierName:      orPlaceholder(o.SupplierName),
			OrderQuantity:     o.OrderQuantity,
			DeliveredQuantity: o.DeliveredQuantity,
			AcquisitionPrice:  o.AcquisitionPrice,
			Status:            o.Status,
		}
	}

	byReason := make(map[entity.AdjustmentReason]int64, len(entity.RefundReasons))
	resp.Refunds = make([]dto.InventoryRefundRow, len(t.refunds))
	for i, r := range t.refunds {
		resp.Refunds[i] = dto.InventoryRefundRow{
			Date:        r.Day,
			SKU:         orPlaceholder(r.SKU),
			ProductName: orPlaceholder(r.ProductName),
			Quantity:    r.Quantity,
			Amount:      r.Amount,
			Reason:      string(r.Reason),
		}
		byReason[r.Reason] += r.Quantity
		resp.TotalRefunds += r.Quantity
	}
	// Toda razón de la taxonomía aparece en el resumen, con cero incluido;
	// el render no tiene que adivinar el universo de razones.
	resp.RefundSummary = make([]dto.RefundReasonSummaryRow, len(entity.RefundReasons))
	for i, reason := range entity.RefundReasons {
		resp.RefundSummary[i] = dto.RefundReasonSummaryRow{Reason: string(reason), Quantity: byReason[reason]}
	}

	resp.Adjustments = make([]dto.InventoryAdjustmentRow, len(t.adjusts))
	for i, a := range t.adjusts {
		resp.Adjustments[i] = dto.InventoryAdjustmentRow{
			Date:             a.Day,
			SKU:              orPlaceholder(a.SKU),
			ProductName:      orPlaceholder(a.ProductName),
			Change:           a.Change,
			PreviousQuantity: a.PreviousQuantity,
			AdjustedQuantity: a.AdjustedQuantity,
			Reason:           string(a.Reason),
			Note:             a.Note,
		}
	}

	resp.Breakdown = make([]dto.InventoryBreakdownRow, len(t.breakout))
	for i, b := range t.breakout {
		resp.Breakdown[i] = dto.InventoryBreakdownRow{
			Date:             b.Day,
			SKU:              orPlaceholder(b.SKU),
			ProductName:      orPlaceholder(b.ProductName),
			Quantity:         b.Quantity,
			PrevQuantity:     b.PrevQuantity,
			AcquisitionPrice: b.AcquisitionPrice,
		}
	}

	resp.LowStock = []dto.InventorySummaryRow{}
	for _, c := range t.current {
		row := summaryRow(c, uc.defaultThreshold)
		if row.StockStatus != usecase.StockStatusIn {
			resp.LowStock = append(resp.LowStock, row)
		}
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// fetchMovements consulta los ledgers de movimiento en secuencia; son cinco
// consultas cortas sobre índices de fecha.
func (uc *InventoryReportUseCase) fetchMovements(ctx context.Context, p repository.ReportPeriod) movementData {
	var m movementData
	if m.delivered, m.err = uc.repo.ListDeliveredStock(ctx, p); m.err != nil {
		return m
	}
	if m.adjTotals, m.err = uc.repo.ListAdjustmentTotals(ctx, p); m.err != nil {
		return m
	}
	if m.adjChanges, m.err = uc.repo.ListAdjustmentChanges(ctx, p); m.err != nil {
		return m
	}
	if m.refunds, m.err = uc.repo.ListRefundTotals(ctx, p); m.err != nil {
		return m
	}
	m.sold, m.err = uc.repo.ListSoldTotals(ctx, p)
	return m
}

// reconcile combina los ledgers en una fila por producto activo. Productos
// sin historia quedan con todas las métricas en cero.
func reconcile(
	products []repository.ProductInfoRow,
	m movementData,
	snapshot []repository.StockSnapshotRow,
) []dto.InventoryReportRow {
	index := make(map[string]*dto.InventoryReportRow, len(products))
	rows := make([]dto.InventoryReportRow, len(products))
	for i, p := range products {
		rows[i] = dto.InventoryReportRow{
			ProductID:    p.ProductID,
			SKU:          p.SKU,
			ProductName:  p.Name,
			CategoryName: p.CategoryName,
		}
		index[p.ProductID] = &rows[i]
	}

	for _, s := range snapshot {
		if row, ok := index[s.ProductID]; ok {
			row.OnHand = s.Quantity
		}
	}
	for _, s := range m.sold {
		if row, ok := index[s.ProductID]; ok {
			row.Sold = s.Quantity
		}
	}
	for _, d := range m.delivered {
		if row, ok := index[d.ProductID]; ok {
			row.Restocked += d.Quantity
		}
	}
	// Ajustes y devoluciones comparten taxonomía de razones: dañado, vencido
	// y merma se suman desde ambos ledgers.
	for _, a := range m.adjTotals {
		row, ok := index[a.ProductID]
		if !ok {
			continue
		}
		switch a.Reason {
		case entity.ReasonDamaged:
			row.Damaged += a.Quantity
		case entity.ReasonExpired:
			row.Expired += a.Quantity
		case entity.ReasonShrinkage:
			row.Shrinkage += a.Quantity
		case entity.ReasonRestocked:
			row.Restocked += a.Quantity
		}
	}
	for _, a := range m.adjChanges {
		if a.Reason != entity.ReasonCorrection {
			continue
		}
		if row, ok := index[a.ProductID]; ok {
			row.Correction += a.Change
		}
	}
	for _, r := range m.refunds {
		row, ok := index[r.ProductID]
		if !ok {
			continue
		}
		switch r.Reason {
		case entity.ReasonDamaged:
			row.Damaged += r.Quantity
		case entity.ReasonExpired:
			row.Expired += r.Quantity
		case entity.ReasonShrinkage:
			row.Shrinkage += r.Quantity
		case entity.ReasonCustomerRequest:
			row.CustomerRequest += r.Quantity
		}
	}
	return rows
}
