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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_id, quantity, acquisition_price, status, created_at, updated_at`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventories (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.ProductID, inv.Quantity, inv.AcquisitionPrice, inv.Status,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get inventory")
}

func (r *InventoryRepo) GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventories
		WHERE product_id = $1 AND status = 'active'`
	return r.scanOne(r.q.QueryRow(ctx, query, productID), "get inventory by product")
}

func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + ` FROM inventories
		WHERE status = 'active' ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	list := []*entity.Inventory{}
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.AcquisitionPrice,
			&inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// AdjustQuantity suma delta al stock del producto dentro de la misma sentencia,
// con guardia contra resultado negativo. RETURNING devuelve el estado final.
func (r *InventoryRepo) AdjustQuantity(ctx context.Context, productID string, delta int64) (*entity.Inventory, error) {
	query := `
		UPDATE inventories
		SET quantity = quantity + $2, updated_at = now()
		WHERE product_id = $1 AND status = 'active' AND quantity + $2 >= 0
		RETURNING ` + inventoryColumns
	inv, err := r.scanOne(r.q.QueryRow(ctx, query, productID, delta), "adjust inventory")
	if err != nil {
		return nil, err
	}
	if inv == nil {
		// Sin fila afectada: o no hay inventario activo o el stock quedaría negativo.
		cur, err := r.GetByProductID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	return inv, nil
}

func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	query := `
		UPDATE inventories SET quantity = $2, acquisition_price = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.Quantity, inv.AcquisitionPrice, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete marca el inventario como deleted (borrado lógico).
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventories SET status = 'deleted', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.AcquisitionPrice,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
