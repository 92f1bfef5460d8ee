package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// RefundUseCase devoluciones de líneas vendidas. Solo las devoluciones por
// "customer request" reponen stock: mercadería dañada, vencida o perdida no
// vuelve al inventario vendible.
type RefundUseCase struct {
	refundRepo repository.RefundRepository
	txRunner   repository.TxRunner
}

// NewRefundUseCase construye el caso de uso.
func NewRefundUseCase(refundRepo repository.RefundRepository, txRunner repository.TxRunner) *RefundUseCase {
	return &RefundUseCase{refundRepo: refundRepo, txRunner: txRunner}
}

// Create devuelve una línea de venta completa o parcial. La línea queda
// marcada como devuelta y sale de los agregados de ventas; la razón debe
// pertenecer al conjunto cerrado de razones de devolución.
func (uc *RefundUseCase) Create(ctx context.Context, in dto.CreateRefundRequest) (*dto.RefundResponse, error) {
	reason := entity.AdjustmentReason(in.Reason)
	if !entity.ValidRefundReason(reason) {
		return nil, domain.ErrInvalidReason
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var refund *entity.Refund
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		item, err := r.Transactions.GetItemByID(ctx, in.TransactionItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.IsRefunded {
			return domain.ErrConflict
		}
		if in.Quantity > item.Quantity {
			return domain.ErrInvalidInput
		}

		if err := r.Transactions.MarkItemRefunded(ctx, item.ID); err != nil {
			return err
		}

		refund = &entity.Refund{
			ID:                uuid.New().String(),
			TransactionItemID: item.ID,
			ProductID:         item.ProductID,
			Quantity:          in.Quantity,
			RefundPrice:       item.Price,
			Reason:            reason,
			RefundedAt:        now,
			CreatedAt:         now,
		}
		if err := r.Refunds.Create(ctx, refund); err != nil {
			return err
		}

		if reason != entity.ReasonCustomerRequest {
			return nil
		}
		inv, err := r.Inventory.GetByProductID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return nil
		}
		prev := inv.Quantity
		updated, err := r.Inventory.AdjustQuantity(ctx, item.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		rec := &entity.InventoryRecord{
			ID:               uuid.New().String(),
			ProductID:        item.ProductID,
			InventoryID:      updated.ID,
			Quantity:         updated.Quantity,
			PrevQuantity:     prev,
			AcquisitionPrice: updated.AcquisitionPrice,
			DateRecorded:     now,
		}
		return r.Records.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return toRefundResponse(refund), nil
}

// GetByID devuelve una devolución.
func (uc *RefundUseCase) GetByID(ctx context.Context, id string) (*dto.RefundResponse, error) {
	rf, err := uc.refundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rf == nil {
		return nil, nil
	}
	return toRefundResponse(rf), nil
}

// List lista devoluciones, más recientes primero.
func (uc *RefundUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.RefundResponse, error) {
	page.DefaultPage()
	list, err := uc.refundRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RefundResponse, 0, len(list))
	for _, rf := range list {
		out = append(out, *toRefundResponse(rf))
	}
	return out, nil
}

func toRefundResponse(rf *entity.Refund) *dto.RefundResponse {
	return &dto.RefundResponse{
		ID:                rf.ID,
		TransactionItemID: rf.TransactionItemID,
		ProductID:         rf.ProductID,
		Quantity:          rf.Quantity,
		RefundPrice:       rf.RefundPrice,
		Reason:            string(rf.Reason),
		RefundedAt:        rf.RefundedAt,
	}
}
