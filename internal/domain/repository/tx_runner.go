package repository

import "context"

// TxRepos repositorios atados a una misma transacción de DB.
type TxRepos struct {
	Products     ProductRepository
	Inventory    InventoryRepository
	Records      InventoryRecordRepository
	Stocks       StockRepository
	Transactions TransactionRepository
	Refunds      RefundRepository
	Adjustments  StockAdjustmentRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si fn devuelve nil,
// rollback si devuelve error. La implementación vive en infrastructure.
type TxRunner interface {
	Run(ctx context.Context, fn func(TxRepos) error) error
}
