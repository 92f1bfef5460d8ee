package repository

import (
	"context"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// StockAdjustmentRepository define el puerto de persistencia para ajustes
// manuales de inventario.
type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockAdjustment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockAdjustment, error)
}
