package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `s.id, s.product_id, s.supplier_id, COALESCE(sup.name, ''), s.order_quantity, s.delivered_quantity, s.acquisition_price, s.delivery_date, s.delivered_date, s.status, s.is_deleted, s.created_at, s.updated_at`

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
// El nombre del proveedor se resuelve en la consulta; vacío si fue borrado.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para órdenes de compra.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, supplier_id, order_quantity, delivered_quantity, acquisition_price, delivery_date, delivered_date, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ProductID, s.SupplierID, s.OrderQuantity, s.DeliveredQuantity,
		s.AcquisitionPrice, s.DeliveryDate, s.DeliveredDate, s.Status,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		// FK rota: el producto o el proveedor referenciado ya no existe.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks s LEFT JOIN suppliers sup ON sup.id = s.supplier_id
		WHERE s.id = $1 AND s.is_deleted = false`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.SupplierID, &s.SupplierName, &s.OrderQuantity,
		&s.DeliveredQuantity, &s.AcquisitionPrice, &s.DeliveryDate, &s.DeliveredDate,
		&s.Status, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List lista órdenes; status vacío lista todas.
func (r *StockRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks s LEFT JOIN suppliers sup ON sup.id = s.supplier_id
		WHERE s.is_deleted = false AND ($1 = '' OR s.status = $1)
		ORDER BY s.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return r.scanMany(rows)
}

func (r *StockRepo) ListDeliveredBetween(ctx context.Context, from, to time.Time) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks s LEFT JOIN suppliers sup ON sup.id = s.supplier_id
		WHERE s.is_deleted = false AND s.status = 'delivered'
		  AND s.delivered_date >= $1 AND s.delivered_date <= $2
		ORDER BY s.delivered_date`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list delivered stocks: %w", err)
	}
	return r.scanMany(rows)
}

func (r *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	query := `
		UPDATE stocks
		SET order_quantity = $2, delivered_quantity = $3, acquisition_price = $4,
		    delivery_date = $5, delivered_date = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OrderQuantity, s.DeliveredQuantity, s.AcquisitionPrice,
		s.DeliveryDate, s.DeliveredDate, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete marca la orden como borrada (borrado lógico).
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stocks SET is_deleted = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanMany(rows pgx.Rows) ([]*entity.Stock, error) {
	defer rows.Close()
	list := []*entity.Stock{}
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.SupplierID, &s.SupplierName, &s.OrderQuantity,
			&s.DeliveredQuantity, &s.AcquisitionPrice, &s.DeliveryDate, &s.DeliveredDate,
			&s.Status, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
