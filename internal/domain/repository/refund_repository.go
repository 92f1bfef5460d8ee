package repository

import (
	"context"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// RefundRepository define el puerto de persistencia para devoluciones.
type RefundRepository interface {
	Create(ctx context.Context, refund *entity.Refund) error
	GetByID(ctx context.Context, id string) (*entity.Refund, error)
	GetByTransactionItemID(ctx context.Context, itemID string) (*entity.Refund, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Refund, error)
}
