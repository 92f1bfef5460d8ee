package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

const topSellers = 10

// placeholder valor de presentación para referencias rotas (producto o
// categoría borrados).
const placeholder = "N/A"

// SalesReportUseCase agrega las ventas del rango: totales, top de
// vendedores por SKU y por categoría, y desglose diario con sus ventas.
//
// GrossSales se recalcula desde las líneas (precio x cantidad) en vez de
// confiar en la cabecera almacenada: una cabecera desfasada respecto de sus
// líneas no debe contaminar el total. El desglose diario, en cambio, usa los
// montos almacenados de cada cabecera.
type SalesReportUseCase struct {
	repo repository.ReportRepository
	tz   string
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(repo repository.ReportRepository, tz string) *SalesReportUseCase {
	return &SalesReportUseCase{repo: repo, tz: tz}
}

// Generate construye el reporte de ventas del rango. Un rango sin ventas
// devuelve el objeto en cero con arreglos vacíos, nunca nil.
func (uc *SalesReportUseCase) Generate(ctx context.Context, in dto.ReportRangeRequest) (*dto.SalesReportResponse, error) {
	p := ParsePeriod(uc.tz, in.From, in.To)

	type itemsResult struct {
		rows []repository.SaleItemRow
		err  error
	}
	type headersResult struct {
		rows []repository.SaleHeaderRow
		err  error
	}
	itemsCh := make(chan itemsResult, 1)
	headersCh := make(chan headersResult, 1)

	go func() {
		rows, err := uc.repo.ListSaleItems(ctx, p)
		itemsCh <- itemsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListSaleHeaders(ctx, p)
		headersCh <- headersResult{rows, err}
	}()

	items := <-itemsCh
	headers := <-headersCh
	if items.err != nil {
		return nil, fmt.Errorf("reporte ventas: líneas: %w", items.err)
	}
	if headers.err != nil {
		return nil, fmt.Errorf("reporte ventas: cabeceras: %w", headers.err)
	}

	resp := &dto.SalesReportResponse{
		From:           p.FromDay,
		To:             p.ToDay,
		GrossSales:     decimal.Zero,
		NetProfit:      decimal.Zero,
		TotalRevenue:   decimal.Zero,
		TotalVAT:       decimal.Zero,
		TotalDiscount:  decimal.Zero,
		TopBySKU:       []dto.TopSellerRow{},
		TopByCategory:  []dto.TopSellerRow{},
		DailyBreakdown: []dto.DailySalesRow{},
	}

	skuTop := newTopAggregator()
	catTop := newTopAggregator()
	for _, it := range items.rows {
		resp.Volume += it.Quantity
		lineGross := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		resp.GrossSales = resp.GrossSales.Add(lineGross)
		cost := it.AcquisitionPrice.Mul(decimal.NewFromInt(it.Quantity))
		resp.NetProfit = resp.NetProfit.Add(it.NetAmount.Sub(cost))
		resp.TotalVAT = resp.TotalVAT.Add(it.VatAmount)

		sku, name := it.SKU, it.ProductName
		if sku == "" {
			sku = placeholder
		}
		if name == "" {
			name = placeholder
		}
		skuTop.add(sku, name, it.Quantity, lineGross)

		cat := it.CategoryName
		if cat == "" {
			cat = placeholder
		}
		catTop.add(cat, cat, it.Quantity, lineGross)
	}
	resp.TopBySKU = skuTop.top(topSellers)
	resp.TopByCategory = catTop.top(topSellers)

	// Desglose diario desde las cabeceras almacenadas. Las cabeceras vienen
	// en orden cronológico, así que los días quedan ascendentes.
	dayIndex := map[string]int{}
	for _, h := range headers.rows {
		resp.TotalRevenue = resp.TotalRevenue.Add(h.TotalAmount)
		resp.TotalDiscount = resp.TotalDiscount.Add(h.TotalDiscount)

		i, ok := dayIndex[h.Day]
		if !ok {
			i = len(resp.DailyBreakdown)
			dayIndex[h.Day] = i
			resp.DailyBreakdown = append(resp.DailyBreakdown, dto.DailySalesRow{
				Date:          h.Day,
				GrossAmount:   decimal.Zero,
				VatAmount:     decimal.Zero,
				TotalDiscount: decimal.Zero,
				TotalAmount:   decimal.Zero,
				Transactions:  []dto.SalesReportTransactionRow{},
			})
		}
		day := &resp.DailyBreakdown[i]
		day.TransactionCount++
		day.Quantity += h.Quantity
		day.GrossAmount = day.GrossAmount.Add(h.GrossAmount)
		day.VatAmount = day.VatAmount.Add(h.VatAmount)
		day.TotalDiscount = day.TotalDiscount.Add(h.TotalDiscount)
		day.TotalAmount = day.TotalAmount.Add(h.TotalAmount)
		day.Transactions = append(day.Transactions, dto.SalesReportTransactionRow{
			ReceiptNum:    h.ReceiptNum,
			Quantity:      h.Quantity,
			GrossAmount:   h.GrossAmount,
			VatAmount:     h.VatAmount,
			TotalDiscount: h.TotalDiscount,
			TotalAmount:   h.TotalAmount,
		})
	}

	return resp, nil
}

// topAggregator acumula cantidades por clave preservando el orden de primera
// aparición. Los mapas de Go iteran en orden aleatorio; el orden de inserción
// se lleva aparte para que los empates del ranking sean estables.
type topAggregator struct {
	index map[string]int
	rows  []dto.TopSellerRow
}

func newTopAggregator() *topAggregator {
	return &topAggregator{index: map[string]int{}}
}

func (a *topAggregator) add(key, name string, qty int64, amount decimal.Decimal) {
	i, ok := a.index[key]
	if !ok {
		i = len(a.rows)
		a.index[key] = i
		a.rows = append(a.rows, dto.TopSellerRow{Key: key, Name: name, Amount: decimal.Zero})
	}
	a.rows[i].Quantity += qty
	a.rows[i].Amount = a.rows[i].Amount.Add(amount)
}

// top devuelve las n claves con mayor cantidad, descendente. Orden estable:
// a igual cantidad gana la clave vista primero.
func (a *topAggregator) top(n int) []dto.TopSellerRow {
	sorted := make([]dto.TopSellerRow, len(a.rows))
	copy(sorted, a.rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
