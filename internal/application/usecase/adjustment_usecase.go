package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// AdjustmentUseCase ajustes manuales de inventario. El ajuste, el cambio de
// stock y la foto del historial quedan en la misma transacción; así el
// reporte de inventario puede reconciliar cada razón contra su ledger.
type AdjustmentUseCase struct {
	adjRepo  repository.StockAdjustmentRepository
	txRunner repository.TxRunner
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(adjRepo repository.StockAdjustmentRepository, txRunner repository.TxRunner) *AdjustmentUseCase {
	return &AdjustmentUseCase{adjRepo: adjRepo, txRunner: txRunner}
}

// Create aplica un ajuste manual. La razón debe pertenecer al conjunto
// cerrado de razones de ajuste; un delta que deja el stock negativo falla
// con ErrInsufficientStock.
func (uc *AdjustmentUseCase) Create(ctx context.Context, userID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	reason := entity.AdjustmentReason(in.Reason)
	if !entity.ValidAdjustmentReason(reason) {
		return nil, domain.ErrInvalidReason
	}
	if in.Change == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var adj *entity.StockAdjustment
	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		inv, err := r.Inventory.GetByProductID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		prev := inv.Quantity
		updated, err := r.Inventory.AdjustQuantity(ctx, in.ProductID, in.Change)
		if err != nil {
			return err
		}

		adj = &entity.StockAdjustment{
			ID:               uuid.New().String(),
			ProductID:        in.ProductID,
			Change:           in.Change,
			Reason:           reason,
			PreviousQuantity: prev,
			AdjustedQuantity: updated.Quantity,
			Note:             in.Note,
			Date:             now,
			CreatedBy:        userID,
			CreatedAt:        now,
		}
		if err := r.Adjustments.Create(ctx, adj); err != nil {
			return err
		}

		rec := &entity.InventoryRecord{
			ID:               uuid.New().String(),
			ProductID:        in.ProductID,
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
	return toAdjustmentResponse(adj), nil
}

// List lista ajustes; productID vacío lista todos.
func (uc *AdjustmentUseCase) List(ctx context.Context, productID string, page dto.PageRequest) ([]dto.AdjustmentResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.StockAdjustment
		err  error
	)
	if productID != "" {
		list, err = uc.adjRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	} else {
		list, err = uc.adjRepo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(list))
	for _, adj := range list {
		out = append(out, *toAdjustmentResponse(adj))
	}
	return out, nil
}

func toAdjustmentResponse(adj *entity.StockAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:               adj.ID,
		ProductID:        adj.ProductID,
		Change:           adj.Change,
		Reason:           string(adj.Reason),
		PreviousQuantity: adj.PreviousQuantity,
		AdjustedQuantity: adj.AdjustedQuantity,
		Note:             adj.Note,
		Date:             adj.Date,
		CreatedBy:        adj.CreatedBy,
	}
}
