package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// TransactionUseCase registro y consulta de ventas. Una venta descuenta
// stock, deja una foto por producto en el historial y persiste cabecera y
// líneas, todo dentro de una transacción de DB.
type TransactionUseCase struct {
	txRepo   repository.TransactionRepository
	txRunner repository.TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.TransactionRepository, txRunner repository.TxRunner) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, txRunner: txRunner}
}

// Create registra una venta. Los montos se calculan por línea según el tipo
// de IVA del producto; el precio almacenado es el vigente del producto al
// momento de la venta.
func (uc *TransactionUseCase) Create(ctx context.Context, cashierID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountNone
	}

	now := time.Now()
	var resp *dto.TransactionResponse
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		receiptNum, err := r.Transactions.NextReceiptNum(ctx)
		if err != nil {
			return err
		}

		t := &entity.Transaction{
			ID:            uuid.New().String(),
			ReceiptNum:    receiptNum,
			CashierID:     cashierID,
			DiscountType:  discountType,
			PaymentMethod: in.PaymentMethod,
			Cash:          in.Cash,
			CreatedAt:     now,
		}
		gross := decimal.Zero
		vatable := decimal.Zero
		vatExempt := decimal.Zero
		zeroRated := decimal.Zero
		vatTotal := decimal.Zero
		var totalQty int64

		items := make([]*entity.TransactionItem, 0, len(in.Items))
		for _, line := range in.Items {
			if line.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			product, err := r.Products.GetByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.Status != entity.ProductStatusActive {
				return domain.ErrNotFound
			}

			prevInv, err := r.Inventory.GetByProductID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if prevInv == nil {
				return domain.ErrNotFound
			}
			prev := prevInv.Quantity
			updated, err := r.Inventory.AdjustQuantity(ctx, line.ProductID, -line.Quantity)
			if err != nil {
				return err
			}

			amounts := ComputeLine(product.Price, line.Quantity, product.VatType)
			item := &entity.TransactionItem{
				ID:            uuid.New().String(),
				TransactionID: t.ID,
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				Price:         product.Price,
				NetAmount:     amounts.Net,
				VatAmount:     amounts.VAT,
				TotalAmount:   amounts.Total,
				VatType:       product.VatType,
				CreatedAt:     now,
			}
			items = append(items, item)

			totalQty += line.Quantity
			gross = gross.Add(amounts.Total)
			vatTotal = vatTotal.Add(amounts.VAT)
			switch product.VatType {
			case entity.VatTypeVatable:
				vatable = vatable.Add(amounts.Net)
			case entity.VatTypeExempt:
				vatExempt = vatExempt.Add(amounts.Net)
			case entity.VatTypeZeroRated:
				zeroRated = zeroRated.Add(amounts.Net)
			}

			rec := &entity.InventoryRecord{
				ID:               uuid.New().String(),
				ProductID:        line.ProductID,
				InventoryID:      updated.ID,
				Quantity:         updated.Quantity,
				PrevQuantity:     prev,
				AcquisitionPrice: updated.AcquisitionPrice,
				DateRecorded:     now,
			}
			if err := r.Records.Create(ctx, rec); err != nil {
				return err
			}
		}

		discount := DiscountFor(discountType, gross)
		total := gross.Sub(discount)
		if in.PaymentMethod == entity.PaymentCash && in.Cash.LessThan(total) {
			return domain.ErrInvalidInput
		}

		t.TotalQty = totalQty
		t.GrossAmount = gross
		t.VatableAmount = vatable
		t.VatExemptSales = vatExempt
		t.VatZeroRatedSales = zeroRated
		t.VatAmount = vatTotal
		t.TotalDiscount = discount
		t.TotalAmount = total
		t.Change = in.Cash.Sub(total)
		if t.Change.IsNegative() {
			t.Change = decimal.Zero
		}

		if err := r.Transactions.Create(ctx, t, items); err != nil {
			return err
		}
		resp = toTransactionResponse(t, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	items, err := uc.txRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t, items), nil
}

// List lista ventas del rango con paginación. Rango vacío lista todo.
func (uc *TransactionUseCase) List(ctx context.Context, from, to time.Time, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	if to.IsZero() {
		to = time.Now().Add(24 * time.Hour)
	}
	list, err := uc.txRepo.List(ctx, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t, nil))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Void marca una venta como borrada (borrado lógico). No repone stock: la
// corrección de inventario se hace con un ajuste manual explícito.
func (uc *TransactionUseCase) Void(ctx context.Context, id string) error {
	t, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.txRepo.Delete(ctx, id)
}

func toTransactionResponse(t *entity.Transaction, items []*entity.TransactionItem) *dto.TransactionResponse {
	out := &dto.TransactionResponse{
		ID:                t.ID,
		ReceiptNum:        t.ReceiptNum,
		CashierID:         t.CashierID,
		TotalQty:          t.TotalQty,
		GrossAmount:       t.GrossAmount,
		VatableAmount:     t.VatableAmount,
		VatExemptSales:    t.VatExemptSales,
		VatZeroRatedSales: t.VatZeroRatedSales,
		VatAmount:         t.VatAmount,
		TotalDiscount:     t.TotalDiscount,
		TotalAmount:       t.TotalAmount,
		PaymentMethod:     t.PaymentMethod,
		Cash:              t.Cash,
		Change:            t.Change,
		Items:             []dto.TransactionItemResponse{},
		CreatedAt:         t.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.TransactionItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			NetAmount:   it.NetAmount,
			VatAmount:   it.VatAmount,
			TotalAmount: it.TotalAmount,
			VatType:     it.VatType,
			IsRefunded:  it.IsRefunded,
		})
	}
	return out
}
