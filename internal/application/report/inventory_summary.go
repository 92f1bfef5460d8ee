package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// InventorySummaryUseCase resumen del inventario activo actual y detalle de
// movimientos por producto, base de la exportación a planilla.
type InventorySummaryUseCase struct {
	repo             repository.ReportRepository
	tz               string
	defaultThreshold int64
}

// NewInventorySummaryUseCase construye el caso de uso. tz es la zona IANA
// del bucketing por día local de los movimientos.
func NewInventorySummaryUseCase(repo repository.ReportRepository, tz string, defaultThreshold int64) *InventorySummaryUseCase {
	return &InventorySummaryUseCase{repo: repo, tz: tz, defaultThreshold: defaultThreshold}
}

// Generate construye el resumen. El valor total se computa de las mismas
// filas que se muestran, así planilla y totales siempre cuadran.
func (uc *InventorySummaryUseCase) Generate(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	rows, err := uc.repo.ListCurrentInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen inventario: %w", err)
	}
	resp := &dto.InventorySummaryResponse{
		Rows:                []dto.InventorySummaryRow{},
		TotalInventoryValue: decimal.Zero,
	}
	for _, r := range rows {
		row := summaryRow(r, uc.defaultThreshold)
		resp.Rows = append(resp.Rows, row)
		resp.TotalInventoryValue = resp.TotalInventoryValue.Add(row.TotalValue)
	}
	return resp, nil
}

// summaryRow arma la fila valuada de un producto con su estado de stock.
// La comparten el resumen y la tabla de stock bajo del reporte.
func summaryRow(r repository.CurrentInventoryRow, defaultThreshold int64) dto.InventorySummaryRow {
	name := r.ProductName
	if name == "" {
		name = placeholder
	}
	sku := r.SKU
	if sku == "" {
		sku = placeholder
	}
	cat := r.CategoryName
	if cat == "" {
		cat = placeholder
	}

	threshold := defaultThreshold
	if r.LowStockThreshold > 0 {
		threshold = r.LowStockThreshold
	}
	status := usecase.StockStatusIn
	switch {
	case r.Quantity <= 0:
		status = usecase.StockStatusOut
	case r.Quantity <= threshold:
		status = usecase.StockStatusLow
	}

	return dto.InventorySummaryRow{
		ProductID:        r.ProductID,
		SKU:              sku,
		ProductName:      name,
		CategoryName:     cat,
		Quantity:         r.Quantity,
		AcquisitionPrice: r.AcquisitionPrice,
		TotalValue:       r.AcquisitionPrice.Mul(decimal.NewFromInt(r.Quantity)),
		StockStatus:      status,
	}
}
