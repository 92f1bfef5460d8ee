package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para órdenes de compra.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Stock, error)
	// ListDeliveredBetween devuelve las órdenes entregadas con delivered_date
	// dentro del rango dado (inclusive).
	ListDeliveredBetween(ctx context.Context, from, to time.Time) ([]*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id string) error
}
