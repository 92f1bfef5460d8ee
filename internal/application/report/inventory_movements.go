package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// Movements arma los totales de movimiento por producto activo del rango:
// recibido, vendido, devuelto y el stock a la fecha de corte. Productos sin
// movimiento quedan en cero, nunca se omiten.
func (uc *InventorySummaryUseCase) Movements(ctx context.Context, in dto.ReportRangeRequest) (*dto.InventoryMovementsResponse, error) {
	p := ParsePeriod(uc.tz, in.From, in.To)
	cutoff := Cutoff(p, time.Now())

	products, err := uc.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: productos: %w", err)
	}
	delivered, err := uc.repo.ListDeliveredStock(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: entregas: %w", err)
	}
	sold, err := uc.repo.ListSoldTotals(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: vendidos: %w", err)
	}
	refunds, err := uc.repo.ListRefundTotals(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: devoluciones: %w", err)
	}
	snapshot, err := uc.repo.SnapshotAt(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("movimientos inventario: fotos: %w", err)
	}

	index := make(map[string]*dto.InventoryMovementRow, len(products))
	rows := make([]dto.InventoryMovementRow, len(products))
	for i, pr := range products {
		cat := pr.CategoryName
		if cat == "" {
			cat = placeholder
		}
		rows[i] = dto.InventoryMovementRow{
			ProductID:    pr.ProductID,
			SKU:          pr.SKU,
			ProductName:  pr.Name,
			CategoryName: cat,
		}
		index[pr.ProductID] = &rows[i]
	}
	for _, d := range delivered {
		if row, ok := index[d.ProductID]; ok {
			row.QtyReceived += d.Quantity
		}
	}
	for _, s := range sold {
		if row, ok := index[s.ProductID]; ok {
			row.QtySold = s.Quantity
		}
	}
	// Lo devuelto cuenta todas las razones; la distinción por razón vive en
	// el reporte de reconciliación.
	for _, r := range refunds {
		if row, ok := index[r.ProductID]; ok {
			row.QtyRefunded += r.Quantity
		}
	}
	for _, s := range snapshot {
		if row, ok := index[s.ProductID]; ok {
			row.QtyOnHand = s.Quantity
		}
	}

	return &dto.InventoryMovementsResponse{From: p.FromDay, To: p.ToDay, Rows: rows}, nil
}

// ProductDetails arma los historiales de entregas, ventas y devoluciones de
// un producto dentro del rango. Devuelve nil si el producto no existe o está
// inactivo.
func (uc *InventorySummaryUseCase) ProductDetails(ctx context.Context, productID string, in dto.ReportRangeRequest) (*dto.ProductMovementsResponse, error) {
	p := ParsePeriod(uc.tz, in.From, in.To)

	products, err := uc.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("detalle producto: productos: %w", err)
	}
	var info *repository.ProductInfoRow
	for i := range products {
		if products[i].ProductID == productID {
			info = &products[i]
			break
		}
	}
	if info == nil {
		return nil, nil
	}

	receives, err := uc.repo.ListProductReceives(ctx, productID, p)
	if err != nil {
		return nil, fmt.Errorf("detalle producto: entregas: %w", err)
	}
	sales, err := uc.repo.ListProductSales(ctx, productID, p)
	if err != nil {
		return nil, fmt.Errorf("detalle producto: ventas: %w", err)
	}
	refunds, err := uc.repo.ListProductRefunds(ctx, productID, p)
	if err != nil {
		return nil, fmt.Errorf("detalle producto: devoluciones: %w", err)
	}

	cat := info.CategoryName
	if cat == "" {
		cat = placeholder
	}
	return &dto.ProductMovementsResponse{
		ProductID:    info.ProductID,
		SKU:          info.SKU,
		ProductName:  info.Name,
		CategoryName: cat,
		From:         p.FromDay,
		To:           p.ToDay,
		Receives:     toEntries(receives),
		Sales:        toEntries(sales),
		Refunds:      toEntries(refunds),
	}, nil
}

func toEntries(rows []repository.ProductMovementRow) []dto.MovementEntry {
	out := make([]dto.MovementEntry, len(rows))
	for i, r := range rows {
		out[i] = dto.MovementEntry{Date: r.Day, Quantity: r.Quantity, Amount: r.Amount, Reference: r.Reference}
	}
	return out
}
