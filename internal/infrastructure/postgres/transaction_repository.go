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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, receipt_num, cashier_id, total_qty, gross_amount, vatable_amount, vat_exempt_sales, vat_zero_rated_sales, vat_amount, total_amount, total_discount, discount_type, payment_method, cash, change, is_deleted, created_at`

const transactionItemColumns = `id, transaction_id, product_id, quantity, price, net_amount, vat_amount, total_amount, vat_type, is_refunded, is_deleted, created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para ventas.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la cabecera y sus líneas. Debe ejecutarse dentro de una tx
// (vía TxRunner) para que cabecera y líneas queden juntas o ninguna.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction, items []*entity.TransactionItem) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, false, $16)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ReceiptNum, t.CashierID, t.TotalQty, t.GrossAmount, t.VatableAmount,
		t.VatExemptSales, t.VatZeroRatedSales, t.VatAmount, t.TotalAmount, t.TotalDiscount,
		t.DiscountType, t.PaymentMethod, t.Cash, t.Change, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	itemQuery := `
		INSERT INTO transaction_items (` + transactionItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, false, $10)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.TransactionID, it.ProductID, it.Quantity, it.Price,
			it.NetAmount, it.VatAmount, it.TotalAmount, it.VatType, it.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND is_deleted = false`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get transaction")
}

func (r *TransactionRepo) GetByReceiptNum(ctx context.Context, receiptNum string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE receipt_num = $1 AND is_deleted = false`
	return r.scanOne(r.q.QueryRow(ctx, query, receiptNum), "get transaction by receipt")
}

func (r *TransactionRepo) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE is_deleted = false AND created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) ListItems(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	query := `
		SELECT ` + transactionItemColumns + ` FROM transaction_items
		WHERE transaction_id = $1 AND is_deleted = false ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	list := []*entity.TransactionItem{}
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.Quantity, &it.Price,
			&it.NetAmount, &it.VatAmount, &it.TotalAmount, &it.VatType,
			&it.IsRefunded, &it.IsDeleted, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) GetItemByID(ctx context.Context, itemID string) (*entity.TransactionItem, error) {
	query := `SELECT ` + transactionItemColumns + ` FROM transaction_items WHERE id = $1 AND is_deleted = false`
	var it entity.TransactionItem
	err := r.q.QueryRow(ctx, query, itemID).Scan(
		&it.ID, &it.TransactionID, &it.ProductID, &it.Quantity, &it.Price,
		&it.NetAmount, &it.VatAmount, &it.TotalAmount, &it.VatType,
		&it.IsRefunded, &it.IsDeleted, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction item: %w", err)
	}
	return &it, nil
}

func (r *TransactionRepo) MarkItemRefunded(ctx context.Context, itemID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE transaction_items SET is_refunded = true WHERE id = $1 AND is_refunded = false`, itemID)
	if err != nil {
		return fmt.Errorf("mark item refunded: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// NextReceiptNum reserva el siguiente consecutivo de recibo. La secuencia
// garantiza unicidad incluso con cajas concurrentes.
func (r *TransactionRepo) NextReceiptNum(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('receipt_num_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next receipt num: %w", err)
	}
	return fmt.Sprintf("FNS-%09d", n), nil
}

// Delete marca la venta como borrada (borrado lógico); sus líneas quedan fuera
// de los reportes vía el flag de la cabecera.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE transactions SET is_deleted = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) scanOne(row pgx.Row, op string) (*entity.Transaction, error) {
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.ReceiptNum, &t.CashierID, &t.TotalQty, &t.GrossAmount,
		&t.VatableAmount, &t.VatExemptSales, &t.VatZeroRatedSales, &t.VatAmount,
		&t.TotalAmount, &t.TotalDiscount, &t.DiscountType, &t.PaymentMethod,
		&t.Cash, &t.Change, &t.IsDeleted, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
