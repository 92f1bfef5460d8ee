// Package excel implementa la exportación del inventario a XLSX: una hoja
// con el resumen valuado y otra con los movimientos del rango.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
)

var _ report.InventoryReportRenderer = (*InventoryWorkbook)(nil)

const (
	summarySheet   = "Inventario"
	movementsSheet = "Movimientos"
)

var summaryHeaders = []string{"SKU", "Producto", "Categoría", "Cantidad", "Costo unitario", "Valor total", "Estado"}

var movementHeaders = []string{"SKU", "Producto", "Categoría", "Recibido", "Vendido", "Devuelto", "Stock al corte"}

// InventoryWorkbook implementa report.InventoryReportRenderer con excelize.
type InventoryWorkbook struct{}

// NewInventoryWorkbook construye el renderer.
func NewInventoryWorkbook() *InventoryWorkbook { return &InventoryWorkbook{} }

// Render genera la planilla y devuelve sus bytes.
func (w *InventoryWorkbook) Render(summary *dto.InventorySummaryResponse, movements *dto.InventoryMovementsResponse) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := file.NewSheet(movementsSheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja de movimientos: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}

	if err := writeHeaders(file, summarySheet, summaryHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range summary.Rows {
		rowNum := i + 2
		price, _ := r.AcquisitionPrice.Round(2).Float64()
		value, _ := r.TotalValue.Round(2).Float64()
		cells := []any{r.SKU, r.ProductName, r.CategoryName, r.Quantity, price, value, r.StockStatus}
		if err := writeRow(file, summarySheet, rowNum, cells); err != nil {
			return nil, err
		}
	}

	// Fila de total al final.
	totalRow := len(summary.Rows) + 2
	labelCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	total, _ := summary.TotalInventoryValue.Round(2).Float64()
	if err := file.SetCellValue(summarySheet, labelCell, "TOTAL"); err != nil {
		return nil, fmt.Errorf("xlsx: etiqueta total: %w", err)
	}
	if err := file.SetCellValue(summarySheet, valueCell, total); err != nil {
		return nil, fmt.Errorf("xlsx: valor total: %w", err)
	}

	if err := writeHeaders(file, movementsSheet, movementHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range movements.Rows {
		rowNum := i + 2
		cells := []any{r.SKU, r.ProductName, r.CategoryName, r.QtyReceived, r.QtySold, r.QtyRefunded, r.QtyOnHand}
		if err := writeRow(file, movementsSheet, rowNum, cells); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaders(file *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", h, err)
		}
	}
	end, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := file.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, rowNum int, cells []any) error {
	for j, v := range cells {
		cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
		if err := file.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
		}
	}
	return nil
}
