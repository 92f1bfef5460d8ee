package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// Un producto activo sin historia debe aparecer con todas las métricas en
// cero, nunca ausente ni con error.
func TestInventoryReport_ProductoSinHistoria(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		totalValue: dec("0"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{From: "2025-07-01", To: "2025-07-31"})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, "p1", row.ProductID)
	assert.Equal(t, "SKU-1", row.SKU)
	assert.Equal(t, "Bebidas", row.CategoryName)
	assert.Zero(t, row.OnHand)
	assert.Zero(t, row.Sold)
	assert.Zero(t, row.Damaged)
	assert.Zero(t, row.Expired)
	assert.Zero(t, row.Shrinkage)
	assert.Zero(t, row.Correction)
	assert.Zero(t, row.Restocked)
	assert.Zero(t, row.CustomerRequest)
}

// Dañado suma ajustes y devoluciones: 2 por ajuste + 3 por devolución = 5.
// Lo mismo aplica a vencido y merma.
func TestInventoryReport_MermasSumanAmbosLedgers(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		adjTotals: []repository.ReasonQtyRow{
			{ProductID: "p1", Reason: entity.ReasonDamaged, Quantity: 2},
			{ProductID: "p1", Reason: entity.ReasonExpired, Quantity: 4},
		},
		refunds: []repository.ReasonQtyRow{
			{ProductID: "p1", Reason: entity.ReasonDamaged, Quantity: 3},
			{ProductID: "p1", Reason: entity.ReasonShrinkage, Quantity: 1},
		},
		totalValue: dec("0"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.EqualValues(t, 5, row.Damaged)
	assert.EqualValues(t, 4, row.Expired)
	assert.EqualValues(t, 1, row.Shrinkage)
}

// Correction conserva el signo; restocked suma entregas más ajustes de
// reposición; customer request solo viene de devoluciones.
func TestInventoryReport_CorreccionYReposicion(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		delivered: []repository.DeliveredStockRow{
			{ProductID: "p1", Quantity: 20, AcquisitionPrice: dec("30")},
		},
		adjTotals: []repository.ReasonQtyRow{
			{ProductID: "p1", Reason: entity.ReasonRestocked, Quantity: 5},
		},
		adjChanges: []repository.SignedChangeRow{
			{ProductID: "p1", Reason: entity.ReasonCorrection, Change: -7},
		},
		refunds: []repository.ReasonQtyRow{
			{ProductID: "p1", Reason: entity.ReasonCustomerRequest, Quantity: 2},
		},
		totalValue: dec("0"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.EqualValues(t, 25, row.Restocked, "entregas 20 + ajuste restocked 5")
	assert.EqualValues(t, -7, row.Correction, "la corrección conserva el signo")
	assert.EqualValues(t, 2, row.CustomerRequest)
	assert.Zero(t, row.Damaged)
}

// OnHand sale de la última foto anterior al corte; el corte es el fin del
// día superior en la zona del reporte.
func TestInventoryReport_OnHandDesdeFoto(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		snapshot: []repository.StockSnapshotRow{
			{ProductID: "p1", Quantity: 100, AcquisitionPrice: dec("30")},
		},
		sold:       []repository.ProductQtyRow{{ProductID: "p1", Quantity: 15}},
		totalValue: dec("3000"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{From: "2025-07-01", To: "2025-07-15"})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.EqualValues(t, 100, resp.Rows[0].OnHand)
	assert.EqualValues(t, 15, resp.Rows[0].Sold)

	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	want := time.Date(2025, 7, 15, 23, 59, 59, 999999999, manila)
	assert.True(t, repo.lastCutoff.Equal(want), "corte esperado %v, fue %v", want, repo.lastCutoff)
}

// La valuación total es la del inventario actual, no la del rango.
func TestInventoryReport_ValuacionActual(t *testing.T) {
	repo := &fakeReportRepo{
		products:   []repository.ProductInfoRow{{ProductID: "p1", SKU: "S", Name: "N", CategoryName: "C"}},
		totalValue: dec("1234.56"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)
	assert.True(t, resp.TotalInventoryValue.Equal(dec("1234.56")))
}

// Movimientos de productos borrados (fuera de la lista de activos) se
// descartan sin romper el reporte.
func TestInventoryReport_IgnoraProductosBorrados(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		sold: []repository.ProductQtyRow{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "fantasma", Quantity: 99},
		},
		totalValue: dec("0"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.EqualValues(t, 3, resp.Rows[0].Sold)
}

// Las tablas de soporte acompañan la reconciliación: órdenes, devoluciones
// con su resumen por razón, ajustes, fotos del rango y stock bajo.
func TestInventoryReport_TablasDeSoporte(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
		},
		sold: []repository.ProductQtyRow{{ProductID: "p1", Quantity: 8}},
		orders: []repository.OrderReportRow{
			{SKU: "SKU-1", ProductName: "Café", SupplierName: "Proveedor Uno",
				OrderQuantity: 30, DeliveredQuantity: 20, AcquisitionPrice: dec("30"),
				Status: "delivered", DeliveryDay: "2025-07-01", Day: "2025-07-02"},
		},
		refundRows: []repository.RefundReportRow{
			{SKU: "SKU-1", ProductName: "Café", Quantity: 3, Amount: dec("336"),
				Reason: entity.ReasonDamaged, Day: "2025-07-05"},
			{SKU: "", ProductName: "", Quantity: 1, Amount: dec("112"),
				Reason: entity.ReasonCustomerRequest, Day: "2025-07-06"},
		},
		adjRows: []repository.AdjustmentReportRow{
			{SKU: "SKU-1", ProductName: "Café", Change: -7, PreviousQuantity: 27,
				AdjustedQuantity: 20, Reason: entity.ReasonCorrection, Note: "conteo físico", Day: "2025-07-10"},
		},
		snapRows: []repository.SnapshotBreakdownRow{
			{SKU: "SKU-1", ProductName: "Café", Quantity: 20, PrevQuantity: 27,
				AcquisitionPrice: dec("30"), Day: "2025-07-10"},
		},
		current: []repository.CurrentInventoryRow{
			{ProductID: "p1", SKU: "SKU-1", ProductName: "Café", CategoryName: "Bebidas",
				Quantity: 2, AcquisitionPrice: dec("30"), LowStockThreshold: 5},
			{ProductID: "p2", SKU: "SKU-2", ProductName: "Pan", CategoryName: "Panadería",
				Quantity: 50, AcquisitionPrice: dec("10"), LowStockThreshold: 5},
		},
		totalValue: dec("560"),
	}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background(), dto.ReportRangeRequest{From: "2025-07-01", To: "2025-07-31"})
	require.NoError(t, err)

	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "Proveedor Uno", resp.Orders[0].SupplierName)
	// la fecha de la orden es el día local de entrega, no el de creación
	assert.Equal(t, "2025-07-02", resp.Orders[0].Date)
	assert.Equal(t, "2025-07-01", resp.Orders[0].DeliveryDate)

	require.Len(t, resp.Refunds, 2)
	// referencia rota cae al placeholder
	assert.Equal(t, "N/A", resp.Refunds[1].ProductName)
	assert.EqualValues(t, 4, resp.TotalRefunds)

	// el resumen por razón cubre toda la taxonomía, ceros incluidos
	require.Len(t, resp.RefundSummary, len(entity.RefundReasons))
	byReason := map[string]int64{}
	for _, s := range resp.RefundSummary {
		byReason[s.Reason] = s.Quantity
	}
	assert.EqualValues(t, 3, byReason["damaged"])
	assert.EqualValues(t, 1, byReason["customer request"])
	assert.EqualValues(t, 0, byReason["expired"])

	require.Len(t, resp.Adjustments, 1)
	assert.EqualValues(t, -7, resp.Adjustments[0].Change)
	assert.Equal(t, "conteo físico", resp.Adjustments[0].Note)

	require.Len(t, resp.Breakdown, 1)
	assert.EqualValues(t, 27, resp.Breakdown[0].PrevQuantity)

	// solo p1 está en o bajo el umbral
	require.Len(t, resp.LowStock, 1)
	assert.Equal(t, "SKU-1", resp.LowStock[0].SKU)

	assert.EqualValues(t, 8, resp.TotalQuantitySold)
}

func TestInventoryReport_ErrorDelRepositorio(t *testing.T) {
	repo := &fakeReportRepo{err: assert.AnError}
	uc := report.NewInventoryReportUseCase(repo, testTZ, 5)

	_, err := uc.Generate(context.Background(), dto.ReportRangeRequest{})
	assert.Error(t, err)
}
