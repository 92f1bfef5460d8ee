package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// Estados derivados de stock para presentación.
const (
	StockStatusOut = "out_of_stock"
	StockStatusLow = "low_stock"
	StockStatusIn  = "in_stock"
)

const snapshotBatchSize = 500

// InventoryUseCase lectura de inventario y foto diaria del historial.
type InventoryUseCase struct {
	invRepo          repository.InventoryRepository
	recordRepo       repository.InventoryRecordRepository
	productRepo      repository.ProductRepository
	defaultThreshold int64
}

// NewInventoryUseCase construye el caso de uso. defaultThreshold se usa si el
// producto no define umbral propio.
func NewInventoryUseCase(
	invRepo repository.InventoryRepository,
	recordRepo repository.InventoryRecordRepository,
	productRepo repository.ProductRepository,
	defaultThreshold int64,
) *InventoryUseCase {
	return &InventoryUseCase{
		invRepo:          invRepo,
		recordRepo:       recordRepo,
		productRepo:      productRepo,
		defaultThreshold: defaultThreshold,
	}
}

// GetByProduct devuelve el stock vigente de un producto.
func (uc *InventoryUseCase) GetByProduct(ctx context.Context, productID string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.toInventoryResponse(inv, product), nil
}

// List lista el inventario activo con su estado de stock derivado.
func (uc *InventoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.invRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		product, err := uc.productRepo.GetByID(ctx, inv.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toInventoryResponse(inv, product))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// History devuelve el historial de fotos de un producto, más reciente primero.
func (uc *InventoryUseCase) History(ctx context.Context, productID string, page dto.PageRequest) ([]dto.InventoryRecordResponse, error) {
	page.DefaultPage()
	records, err := uc.recordRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.InventoryRecordResponse{
			ID:               rec.ID,
			ProductID:        rec.ProductID,
			Quantity:         rec.Quantity,
			PrevQuantity:     rec.PrevQuantity,
			AcquisitionPrice: rec.AcquisitionPrice,
			DateRecorded:     rec.DateRecorded,
		})
	}
	return out, nil
}

// RecordDailySnapshot crea una foto del historial para cada inventario
// activo. Idempotente en la práctica: cada corrida deja una foto nueva con
// prev = quantity si nada cambió. El "on hand" de los reportes se apoya en
// estas fotos.
func (uc *InventoryUseCase) RecordDailySnapshot(ctx context.Context) (int, error) {
	now := time.Now()
	count := 0
	for offset := 0; ; offset += snapshotBatchSize {
		batch, err := uc.invRepo.List(ctx, snapshotBatchSize, offset)
		if err != nil {
			return count, err
		}
		if len(batch) == 0 {
			return count, nil
		}
		for _, inv := range batch {
			rec := &entity.InventoryRecord{
				ID:               uuid.New().String(),
				ProductID:        inv.ProductID,
				InventoryID:      inv.ID,
				Quantity:         inv.Quantity,
				PrevQuantity:     inv.Quantity,
				AcquisitionPrice: inv.AcquisitionPrice,
				DateRecorded:     now,
			}
			if err := uc.recordRepo.Create(ctx, rec); err != nil {
				return count, err
			}
			count++
		}
		if len(batch) < snapshotBatchSize {
			return count, nil
		}
	}
}

func (uc *InventoryUseCase) toInventoryResponse(inv *entity.Inventory, product *entity.Product) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:               inv.ID,
		ProductID:        inv.ProductID,
		Quantity:         inv.Quantity,
		AcquisitionPrice: inv.AcquisitionPrice,
		UpdatedAt:        inv.UpdatedAt,
	}
	threshold := uc.defaultThreshold
	if product != nil {
		resp.ProductName = product.Name
		resp.SKU = product.SKU
		if product.LowStockThreshold > 0 {
			threshold = product.LowStockThreshold
		}
	}
	switch {
	case inv.Quantity <= 0:
		resp.StockStatus = StockStatusOut
	case inv.Quantity <= threshold:
		resp.StockStatus = StockStatusLow
	default:
		resp.StockStatus = StockStatusIn
	}
	return resp
}
