package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo historial append-only de inventario sobre PostgreSQL.
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository construye el adaptador del historial de inventario.
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

func (r *InventoryRecordRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (id, product_id, inventory_id, quantity, prev_quantity, acquisition_price, date_recorded)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ProductID, rec.InventoryID, rec.Quantity, rec.PrevQuantity,
		rec.AcquisitionPrice, rec.DateRecorded)
	if err != nil {
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

func (r *InventoryRecordRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, inventory_id, quantity, prev_quantity, acquisition_price, date_recorded
		FROM inventory_records
		WHERE product_id = $1 ORDER BY date_recorded DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory records: %w", err)
	}
	defer rows.Close()
	list := []*entity.InventoryRecord{}
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.InventoryID, &rec.Quantity,
			&rec.PrevQuantity, &rec.AcquisitionPrice, &rec.DateRecorded); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// LatestBefore devuelve la última foto por producto con fecha <= cutoff.
// DISTINCT ON toma la fila más reciente de cada producto.
func (r *InventoryRecordRepo) LatestBefore(ctx context.Context, cutoff time.Time) (map[string]*entity.InventoryRecord, error) {
	query := `
		SELECT DISTINCT ON (product_id)
			id, product_id, inventory_id, quantity, prev_quantity, acquisition_price, date_recorded
		FROM inventory_records
		WHERE date_recorded <= $1
		ORDER BY product_id, date_recorded DESC`
	rows, err := r.q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("latest inventory records: %w", err)
	}
	defer rows.Close()
	out := map[string]*entity.InventoryRecord{}
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.InventoryID, &rec.Quantity,
			&rec.PrevQuantity, &rec.AcquisitionPrice, &rec.DateRecorded); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		out[rec.ProductID] = &rec
	}
	return out, rows.Err()
}
