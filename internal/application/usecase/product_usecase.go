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

// ProductUseCase casos de uso CRUD para productos. El stock inicial se crea
// junto con el producto dentro de la misma transacción, con su primera foto
// en el historial.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto con su inventario inicial y la primera foto del historial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	switch in.VatType {
	case entity.VatTypeVatable, entity.VatTypeExempt, entity.VatTypeZeroRated:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.Price.IsNegative() || in.AcquisitionPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		SupplierID:        in.SupplierID,
		Price:             in.Price,
		AcquisitionPrice:  in.AcquisitionPrice,
		VatType:           in.VatType,
		LowStockThreshold: in.LowStockThreshold,
		Status:            entity.ProductStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		if err := r.Products.Create(ctx, product); err != nil {
			return err
		}
		inv := &entity.Inventory{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			Quantity:         in.InitialQuantity,
			AcquisitionPrice: in.AcquisitionPrice,
			Status:           entity.InventoryStatusActive,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := r.Inventory.Create(ctx, inv); err != nil {
			return err
		}
		rec := &entity.InventoryRecord{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			InventoryID:      inv.ID,
			Quantity:         in.InitialQuantity,
			PrevQuantity:     0,
			AcquisitionPrice: in.AcquisitionPrice,
			DateRecorded:     now,
		}
		return r.Records.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU es inmutable.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.AcquisitionPrice != nil {
		if in.AcquisitionPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.AcquisitionPrice = *in.AcquisitionPrice
	}
	if in.VatType != nil {
		switch *in.VatType {
		case entity.VatTypeVatable, entity.VatTypeExempt, entity.VatTypeZeroRated:
		default:
			return nil, domain.ErrInvalidInput
		}
		product.VatType = *in.VatType
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos con paginación. Si query no está vacío, busca
// por nombre o SKU.
func (uc *ProductUseCase) List(ctx context.Context, query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Product
		err  error
	)
	if query != "" {
		list, err = uc.repo.Search(ctx, query, page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: int(total)},
	}, nil
}

// Delete marca el producto y su inventario como borrados (borrado lógico).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		if err := r.Products.Delete(ctx, id); err != nil {
			return err
		}
		inv, err := r.Inventory.GetByProductID(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return nil
		}
		return r.Inventory.Delete(ctx, inv.ID)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		SupplierID:        p.SupplierID,
		Price:             p.Price,
		AcquisitionPrice:  p.AcquisitionPrice,
		VatType:           p.VatType,
		LowStockThreshold: p.LowStockThreshold,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
