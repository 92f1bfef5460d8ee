package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

func TestInventorySummary_EstadosYValuacion(t *testing.T) {
	repo := &fakeReportRepo{
		current: []repository.CurrentInventoryRow{
			{ProductID: "p1", SKU: "SKU-1", ProductName: "Café", CategoryName: "Bebidas",
				Quantity: 0, AcquisitionPrice: dec("30"), LowStockThreshold: 5},
			{ProductID: "p2", SKU: "SKU-2", ProductName: "Pan", CategoryName: "Panadería",
				Quantity: 4, AcquisitionPrice: dec("10"), LowStockThreshold: 5},
			{ProductID: "p3", SKU: "SKU-3", ProductName: "Leche", CategoryName: "Lácteos",
				Quantity: 50, AcquisitionPrice: dec("25.50"), LowStockThreshold: 5},
		},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)

	assert.Equal(t, usecase.StockStatusOut, resp.Rows[0].StockStatus)
	assert.Equal(t, usecase.StockStatusLow, resp.Rows[1].StockStatus)
	assert.Equal(t, usecase.StockStatusIn, resp.Rows[2].StockStatus)

	assert.True(t, resp.Rows[2].TotalValue.Equal(dec("1275")), "50 x 25.50")
	// total = 0 + 40 + 1275
	assert.True(t, resp.TotalInventoryValue.Equal(dec("1315")), "total: %s", resp.TotalInventoryValue)
}

// Sin umbral propio se usa el default del resumen.
func TestInventorySummary_UmbralPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{
		current: []repository.CurrentInventoryRow{
			{ProductID: "p1", SKU: "S", ProductName: "N", CategoryName: "C",
				Quantity: 3, AcquisitionPrice: dec("1"), LowStockThreshold: 0},
		},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, usecase.StockStatusLow, resp.Rows[0].StockStatus)
}

func TestInventorySummary_ReferenciasRotas(t *testing.T) {
	repo := &fakeReportRepo{
		current: []repository.CurrentInventoryRow{
			{ProductID: "p1", SKU: "", ProductName: "", CategoryName: "",
				Quantity: 1, AcquisitionPrice: dec("1"), LowStockThreshold: 5},
		},
	}
	uc := report.NewInventorySummaryUseCase(repo, testTZ, 5)

	resp, err := uc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "N/A", resp.Rows[0].SKU)
	assert.Equal(t, "N/A", resp.Rows[0].ProductName)
	assert.Equal(t, "N/A", resp.Rows[0].CategoryName)
}
