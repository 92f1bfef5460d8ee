package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.RefundRepository = (*RefundRepo)(nil)

const refundColumns = `id, transaction_item_id, product_id, quantity, refund_price, reason, refunded_at, is_deleted, created_at`

// RefundRepo implementación del puerto RefundRepository sobre PostgreSQL.
type RefundRepo struct {
	q Querier
}

// NewRefundRepository construye el adaptador de persistencia para devoluciones.
func NewRefundRepository(q Querier) *RefundRepo {
	return &RefundRepo{q: q}
}

func (r *RefundRepo) Create(ctx context.Context, rf *entity.Refund) error {
	query := `
		INSERT INTO refunds (` + refundColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)`
	_, err := r.q.Exec(ctx, query,
		rf.ID, rf.TransactionItemID, rf.ProductID, rf.Quantity, rf.RefundPrice,
		rf.Reason, rf.RefundedAt, rf.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

func (r *RefundRepo) GetByID(ctx context.Context, id string) (*entity.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE id = $1 AND is_deleted = false`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get refund")
}

func (r *RefundRepo) GetByTransactionItemID(ctx context.Context, itemID string) (*entity.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE transaction_item_id = $1 AND is_deleted = false`
	return r.scanOne(r.q.QueryRow(ctx, query, itemID), "get refund by item")
}

func (r *RefundRepo) List(ctx context.Context, limit, offset int) ([]*entity.Refund, error) {
	query := `
		SELECT ` + refundColumns + ` FROM refunds
		WHERE is_deleted = false ORDER BY refunded_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()
	list := []*entity.Refund{}
	for rows.Next() {
		var rf entity.Refund
		if err := rows.Scan(&rf.ID, &rf.TransactionItemID, &rf.ProductID, &rf.Quantity,
			&rf.RefundPrice, &rf.Reason, &rf.RefundedAt, &rf.IsDeleted, &rf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan refund: %w", err)
		}
		list = append(list, &rf)
	}
	return list, rows.Err()
}

func (r *RefundRepo) scanOne(row pgx.Row, op string) (*entity.Refund, error) {
	var rf entity.Refund
	err := row.Scan(&rf.ID, &rf.TransactionItemID, &rf.ProductID, &rf.Quantity,
		&rf.RefundPrice, &rf.Reason, &rf.RefundedAt, &rf.IsDeleted, &rf.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rf, nil
}
