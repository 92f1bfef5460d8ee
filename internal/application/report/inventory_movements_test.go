package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

func TestMovements_TotalesPorProducto(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: "Bebidas"},
			{ProductID: "p2", SKU: "SKU-2", Name: "Pan", CategoryName: "Panadería"},
		},
		delivered: []repository.DeliveredStockRow{
			{ProductID: "p1", Quantity: 20, AcquisitionPrice: dec("30")},
		},
		sold: []repository.ProductQtyRow{
			{ProductID: "p1", Quantity: 8},
		},
		refunds: []repository.ReasonQtyRow{
			{ProductID: "p1", Reason: entity.ReasonCustomerRequest, Quantity: 2},
			{ProductID: "p1", Reason: entity.ReasonDamaged, Quantity: 1},
		},
		snapshot: []repository.StockSnapshotRow{
			{ProductID: "p1", Quantity: 14},
		},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	resp, err := uc.Movements(context.Background(), dto.ReportRangeRequest{From: "2025-07-01", To: "2025-07-31"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	assert.Equal(t, int64(20), resp.Rows[0].QtyReceived)
	assert.Equal(t, int64(8), resp.Rows[0].QtySold)
	// devuelto suma todas las razones
	assert.Equal(t, int64(3), resp.Rows[0].QtyRefunded)
	assert.Equal(t, int64(14), resp.Rows[0].QtyOnHand)

	// producto sin movimiento: fila presente, todo en cero
	assert.Equal(t, "p2", resp.Rows[1].ProductID)
	assert.Zero(t, resp.Rows[1].QtyReceived)
	assert.Zero(t, resp.Rows[1].QtySold)
	assert.Zero(t, resp.Rows[1].QtyRefunded)
	assert.Zero(t, resp.Rows[1].QtyOnHand)

	assert.Equal(t, "2025-07-01", resp.From)
	assert.Equal(t, "2025-07-31", resp.To)
}

func TestMovements_RangoInvalidoNoFiltra(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	resp, err := uc.Movements(context.Background(), dto.ReportRangeRequest{From: "no-es-fecha", To: ""})
	require.NoError(t, err)
	assert.Empty(t, resp.From)
	assert.Empty(t, resp.To)
	assert.Empty(t, repo.lastPeriod.FromDay)
	assert.Empty(t, repo.lastPeriod.ToDay)
}

func TestProductDetails_Historiales(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{
			{ProductID: "p1", SKU: "SKU-1", Name: "Café", CategoryName: ""},
		},
		receives: []repository.ProductMovementRow{
			{Day: "2025-07-02", Quantity: 20, Amount: dec("600"), Reference: "Proveedor Uno"},
		},
		salesHist: []repository.ProductMovementRow{
			{Day: "2025-07-03", Quantity: 2, Amount: dec("224"), Reference: "FNS-000000001"},
			{Day: "2025-07-04", Quantity: 1, Amount: dec("112"), Reference: "FNS-000000002"},
		},
		refundHist: []repository.ProductMovementRow{
			{Day: "2025-07-05", Quantity: 1, Amount: dec("112"), Reference: "customer request"},
		},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	det, err := uc.ProductDetails(context.Background(), "p1", dto.ReportRangeRequest{From: "2025-07-01", To: "2025-07-31"})
	require.NoError(t, err)
	require.NotNil(t, det)

	assert.Equal(t, "p1", repo.lastProductID)
	assert.Equal(t, "SKU-1", det.SKU)
	// categoría borrada cae al placeholder
	assert.Equal(t, "N/A", det.CategoryName)

	require.Len(t, det.Receives, 1)
	assert.Equal(t, "Proveedor Uno", det.Receives[0].Reference)
	require.Len(t, det.Sales, 2)
	assert.Equal(t, "FNS-000000001", det.Sales[0].Reference)
	require.Len(t, det.Refunds, 1)
	assert.Equal(t, int64(1), det.Refunds[0].Quantity)
}

func TestProductDetails_ProductoInexistente(t *testing.T) {
	repo := &fakeReportRepo{
		products: []repository.ProductInfoRow{{ProductID: "p1", SKU: "S", Name: "N"}},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	det, err := uc.ProductDetails(context.Background(), "fantasma", dto.ReportRangeRequest{})
	require.NoError(t, err)
	assert.Nil(t, det)
}

func TestMovements_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("db caída")
	repo := &fakeReportRepo{err: boom}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	_, err := uc.Movements(context.Background(), dto.ReportRangeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
