package repository

import (
	"context"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para el stock vigente
// de cada producto. Hay a lo sumo una fila activa por producto.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Inventory, error)
	// AdjustQuantity suma delta (puede ser negativo) al stock del producto y
	// devuelve el inventario resultante. Falla con ErrInsufficientStock si
	// el resultado sería negativo.
	AdjustQuantity(ctx context.Context, productID string, delta int64) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	Delete(ctx context.Context, id string) error
}
