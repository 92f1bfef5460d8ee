package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para ventas.
// Una venta se crea con sus líneas en la misma transacción de DB.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction, items []*entity.TransactionItem) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	GetByReceiptNum(ctx context.Context, receiptNum string) (*entity.Transaction, error)
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.Transaction, error)
	ListItems(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error)
	GetItemByID(ctx context.Context, itemID string) (*entity.TransactionItem, error)
	MarkItemRefunded(ctx context.Context, itemID string) error
	// NextReceiptNum reserva el siguiente consecutivo de recibo (FNS-#########).
	NextReceiptNum(ctx context.Context) (string, error)
	Delete(ctx context.Context, id string) error
}
