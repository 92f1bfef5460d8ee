// Package pdf implementa la exportación del reporte de ventas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Volumen | Ventas brutas | Utilidad | IVA | Desc.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP 10 por SKU          │  TOP 10 por categoría            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE DIARIO: día, ventas, montos, recibos              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
)

var _ report.SalesReportRenderer = (*MarotoSalesReport)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter agrupa miles al estilo filipino (1,234.56).
var moneyPrinter = message.NewPrinter(language.English)

// MarotoSalesReport implementa report.SalesReportRenderer usando Maroto v2.
type MarotoSalesReport struct{}

// NewMarotoSalesReport construye el renderer.
func NewMarotoSalesReport() *MarotoSalesReport { return &MarotoSalesReport{} }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoSalesReport) Render(rep *dto.SalesReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(topHeaderRow())
	for _, r := range topRows(rep.TopBySKU, rep.TopByCategory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(dailyHeaderRow())
	for _, r := range dailyRows(rep.DailyBreakdown) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// money formatea un decimal con separador de miles y dos decimales.
func money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}

func rangeLabel(from, to string) string {
	if from == "" {
		from = "inicio"
	}
	if to == "" {
		to = "hoy"
	}
	return from + " a " + to
}

func headerRow(rep *dto.SalesReportResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+rangeLabel(rep.From, rep.To), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func totalsRow(rep *dto.SalesReportResponse) core.Row {
	cells := []struct {
		label string
		value string
	}{
		{"Volumen", fmt.Sprintf("%d", rep.Volume)},
		{"Ventas brutas", money(rep.GrossSales)},
		{"Utilidad neta", money(rep.NetProfit)},
		{"Ingresos", money(rep.TotalRevenue)},
		{"IVA", money(rep.TotalVAT)},
		{"Descuentos", money(rep.TotalDiscount)},
	}
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(2).Add(
			text.New(c.label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(c.value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		))
	}
	return row.New(12).Add(cols...)
}

func topHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New("TOP 10 POR SKU", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
		col.New(6).Add(text.New("TOP 10 POR CATEGORÍA", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

// topRows arma filas de a pares SKU/categoría; las listas pueden tener largos
// distintos.
func topRows(bySKU, byCategory []dto.TopSellerRow) []core.Row {
	n := len(bySKU)
	if len(byCategory) > n {
		n = len(byCategory)
	}
	rows := make([]core.Row, 0, n)
	for i := 0; i < n; i++ {
		cols := make([]core.Col, 0, 2)
		cols = append(cols, topCol(bySKU, i))
		cols = append(cols, topCol(byCategory, i))
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

func topCol(list []dto.TopSellerRow, i int) core.Col {
	if i >= len(list) {
		return col.New(6)
	}
	t := list[i]
	label := fmt.Sprintf("%d. %s — %d uds (%s)", i+1, t.Name, t.Quantity, money(t.Amount))
	return col.New(6).Add(text.New(label, props.Text{Size: 8, Top: 1}))
}

func dailyHeaderRow() core.Row {
	headers := []string{"Fecha", "Ventas", "Cant.", "Bruto", "IVA", "Desc.", "Total"}
	widths := []int{2, 1, 1, 2, 2, 2, 2}
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		))
	}
	return row.New(7).Add(cols...)
}

func dailyRows(days []dto.DailySalesRow) []core.Row {
	rows := make([]core.Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(d.Date, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", d.TransactionCount), props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", d.Quantity), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money(d.GrossAmount), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money(d.VatAmount), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money(d.TotalDiscount), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money(d.TotalAmount), props.Text{Size: 8, Top: 1})),
		))
		for _, t := range d.Transactions {
			receipt := t.ReceiptNum
			if receipt == "" {
				receipt = "N/A"
			}
			rows = append(rows, row.New(5).Add(
				col.New(3).Add(text.New("    "+receipt, props.Text{Size: 7, Color: colorGray, Top: 1})),
				col.New(1).Add(text.New(fmt.Sprintf("%d", t.Quantity), props.Text{Size: 7, Color: colorGray, Top: 1})),
				col.New(2).Add(text.New(money(t.GrossAmount), props.Text{Size: 7, Color: colorGray, Top: 1})),
				col.New(2).Add(text.New(money(t.VatAmount), props.Text{Size: 7, Color: colorGray, Top: 1})),
				col.New(2).Add(text.New(money(t.TotalDiscount), props.Text{Size: 7, Color: colorGray, Top: 1})),
				col.New(2).Add(text.New(money(t.TotalAmount), props.Text{Size: 7, Color: colorGray, Top: 1})),
			))
		}
	}
	return rows
}
