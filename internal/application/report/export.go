package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
)

// SalesReportRenderer renderiza el reporte de ventas a un documento (PDF).
// La implementación vive en infrastructure.
type SalesReportRenderer interface {
	Render(report *dto.SalesReportResponse) ([]byte, error)
}

// InventoryReportRenderer renderiza el inventario a planilla (XLSX): una
// hoja con el resumen valuado y otra con los movimientos del rango.
type InventoryReportRenderer interface {
	Render(summary *dto.InventorySummaryResponse, movements *dto.InventoryMovementsResponse) ([]byte, error)
}

// ExportUseCase genera un reporte y lo pasa directo al renderer. El
// resultado es un valor por request: no hay reporte cacheado entre la
// generación y la exportación.
type ExportUseCase struct {
	sales     *SalesReportUseCase
	summary   *InventorySummaryUseCase
	pdf       SalesReportRenderer
	worksheet InventoryReportRenderer
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(
	sales *SalesReportUseCase,
	summary *InventorySummaryUseCase,
	pdf SalesReportRenderer,
	worksheet InventoryReportRenderer,
) *ExportUseCase {
	return &ExportUseCase{sales: sales, summary: summary, pdf: pdf, worksheet: worksheet}
}

// SalesPDF genera el reporte de ventas del rango y lo exporta como PDF.
func (uc *ExportUseCase) SalesPDF(ctx context.Context, in dto.ReportRangeRequest) ([]byte, error) {
	rep, err := uc.sales.Generate(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.Render(rep)
	if err != nil {
		return nil, fmt.Errorf("exportar PDF de ventas: %w", err)
	}
	return out, nil
}

// InventoryXLSX genera el resumen de inventario actual más los movimientos
// del rango y los exporta como XLSX, una hoja por sección.
func (uc *ExportUseCase) InventoryXLSX(ctx context.Context, in dto.ReportRangeRequest) ([]byte, error) {
	sum, err := uc.summary.Generate(ctx)
	if err != nil {
		return nil, err
	}
	mov, err := uc.summary.Movements(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.worksheet.Render(sum, mov)
	if err != nil {
		return nil, fmt.Errorf("exportar XLSX de inventario: %w", err)
	}
	return out, nil
}
