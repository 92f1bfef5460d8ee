package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

const adjustmentColumns = `id, product_id, change, reason, previous_quantity, adjusted_quantity, note, date, created_by, created_at`

// StockAdjustmentRepo implementación del puerto StockAdjustmentRepository sobre PostgreSQL.
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador para ajustes manuales.
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

func (r *StockAdjustmentRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		adj.ID, adj.ProductID, adj.Change, adj.Reason, adj.PreviousQuantity,
		adj.AdjustedQuantity, adj.Note, adj.Date, adj.CreatedBy, adj.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	return nil
}

func (r *StockAdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments WHERE id = $1`
	var adj entity.StockAdjustment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&adj.ID, &adj.ProductID, &adj.Change, &adj.Reason, &adj.PreviousQuantity,
		&adj.AdjustedQuantity, &adj.Note, &adj.Date, &adj.CreatedBy, &adj.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	return &adj, nil
}

func (r *StockAdjustmentRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + ` FROM stock_adjustments
		WHERE product_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	return r.scanMany(rows)
}

func (r *StockAdjustmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT ` + adjustmentColumns + ` FROM stock_adjustments
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	return r.scanMany(rows)
}

func (r *StockAdjustmentRepo) scanMany(rows pgx.Rows) ([]*entity.StockAdjustment, error) {
	defer rows.Close()
	list := []*entity.StockAdjustment{}
	for rows.Next() {
		var adj entity.StockAdjustment
		if err := rows.Scan(&adj.ID, &adj.ProductID, &adj.Change, &adj.Reason,
			&adj.PreviousQuantity, &adj.AdjustedQuantity, &adj.Note, &adj.Date,
			&adj.CreatedBy, &adj.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		list = append(list, &adj)
	}
	return list, rows.Err()
}
