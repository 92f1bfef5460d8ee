package repository

import (
	"context"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La implementación vive en infrastructure.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre o SKU (ILIKE). Solo productos activos.
	Search(ctx context.Context, query string, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete marca el producto como deleted (borrado lógico).
	Delete(ctx context.Context, id string) error
}
