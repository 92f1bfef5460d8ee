package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// InventoryRecordRepository define el puerto del historial de inventario.
// Los registros son append-only: cada cambio de stock deja una foto
// (cantidad resultante + cantidad previa) con su fecha.
type InventoryRecordRepository interface {
	Create(ctx context.Context, rec *entity.InventoryRecord) error
	// ListByProduct devuelve el historial de un producto, más reciente primero.
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryRecord, error)
	// LatestBefore devuelve la última foto de stock de cada producto con
	// fecha <= cutoff. Es la base del "on hand" de los reportes.
	LatestBefore(ctx context.Context, cutoff time.Time) (map[string]*entity.InventoryRecord, error)
}
