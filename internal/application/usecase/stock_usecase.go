package usecase

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

// StockUseCase ciclo de vida de órdenes de compra: pedir, recibir, cancelar.
// delivered y cancelled son terminales; la recepción suma stock, actualiza el
// costo de adquisición y deja una foto en el historial, todo en una tx.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	txRunner    repository.TxRunner
	loc         *time.Location
}

// NewStockUseCase construye el caso de uso. tz es la zona de los resúmenes
// semanales; una zona inválida cae a UTC.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	txRunner repository.TxRunner,
	tz string,
) *StockUseCase {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo, txRunner: txRunner, loc: loc}
}

// Place registra una orden de compra en estado pending.
func (uc *StockUseCase) Place(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.OrderQuantity <= 0 || in.AcquisitionPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Stock{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		SupplierID:       in.SupplierID,
		OrderQuantity:    in.OrderQuantity,
		AcquisitionPrice: in.AcquisitionPrice,
		DeliveryDate:     in.DeliveryDate,
		Status:           entity.StockStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.stockRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStockResponse(s, product.Name), nil
}

// Deliver marca la orden como entregada y suma el stock recibido.
// La transición ocurre exactamente una vez: una orden ya entregada o
// cancelada devuelve ErrConflict.
func (uc *StockUseCase) Deliver(ctx context.Context, stockID string, in dto.DeliverStockRequest) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	if stock.Status != entity.StockStatusPending {
		return nil, domain.ErrConflict
	}

	delivered := in.DeliveredQuantity
	if delivered == 0 {
		delivered = stock.OrderQuantity
	}
	if delivered < 0 {
		return nil, domain.ErrInvalidInput
	}
	deliveredAt := time.Now()
	if in.DeliveredDate != nil {
		deliveredAt = *in.DeliveredDate
	}

	var productName string
	err = uc.txRunner.Run(ctx, func(r repository.TxRepos) error {
		stock.DeliveredQuantity = delivered
		stock.DeliveredDate = &deliveredAt
		stock.Status = entity.StockStatusDelivered
		stock.UpdatedAt = deliveredAt
		if err := r.Stocks.Update(ctx, stock); err != nil {
			return err
		}

		inv, err := r.Inventory.GetByProductID(ctx, stock.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		prev := inv.Quantity
		updated, err := r.Inventory.AdjustQuantity(ctx, stock.ProductID, delivered)
		if err != nil {
			return err
		}
		// El costo vigente pasa a ser el de la última entrega.
		updated.AcquisitionPrice = stock.AcquisitionPrice
		updated.UpdatedAt = deliveredAt
		if err := r.Inventory.Update(ctx, updated); err != nil {
			return err
		}

		product, err := r.Products.GetByID(ctx, stock.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			productName = product.Name
			product.AcquisitionPrice = stock.AcquisitionPrice
			product.UpdatedAt = deliveredAt
			if err := r.Products.Update(ctx, product); err != nil {
				return err
			}
		}

		rec := &entity.InventoryRecord{
			ID:               uuid.New().String(),
			ProductID:        stock.ProductID,
			InventoryID:      updated.ID,
			Quantity:         updated.Quantity,
			PrevQuantity:     prev,
			AcquisitionPrice: stock.AcquisitionPrice,
			DateRecorded:     deliveredAt,
		}
		return r.Records.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock, productName), nil
}

// Cancel marca la orden como cancelada. Solo órdenes pending.
func (uc *StockUseCase) Cancel(ctx context.Context, stockID string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	if stock.Status != entity.StockStatusPending {
		return nil, domain.ErrConflict
	}
	stock.Status = entity.StockStatusCancelled
	stock.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock, ""), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *StockUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	if status != "" {
		switch status {
		case entity.StockStatusPending, entity.StockStatusDelivered, entity.StockStatusCancelled:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.stockRepo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s, ""))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// OrderSummary agrupa las órdenes entregadas del rango por semana local
// (lunes a domingo), ascendente por semana. Rango vacío resume todo.
func (uc *StockUseCase) OrderSummary(ctx context.Context, from, to time.Time) ([]dto.OrderSummaryRow, error) {
	if to.IsZero() {
		to = time.Now().Add(24 * time.Hour)
	}
	list, err := uc.stockRepo.ListDeliveredBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	type week struct {
		row dto.OrderSummaryRow
	}
	order := []string{}
	weeks := map[string]*week{}
	for _, s := range list {
		if s.DeliveredDate == nil {
			continue
		}
		start := weekStart(s.DeliveredDate.In(uc.loc))
		key := start.Format("2006-01-02")
		w, ok := weeks[key]
		if !ok {
			w = &week{row: dto.OrderSummaryRow{
				WeekStart: key,
				WeekEnd:   start.AddDate(0, 0, 6).Format("2006-01-02"),
				TotalCost: decimal.Zero,
			}}
			weeks[key] = w
			order = append(order, key)
		}
		w.row.OrderCount++
		w.row.TotalOrdered += s.DeliveredQuantity
		cost := s.AcquisitionPrice.Mul(decimal.NewFromInt(s.DeliveredQuantity))
		w.row.TotalCost = w.row.TotalCost.Add(cost)
	}
	out := make([]dto.OrderSummaryRow, 0, len(order))
	for _, key := range order {
		out = append(out, weeks[key].row)
	}
	return out, nil
}

// weekStart trunca al lunes 00:00 de la semana de t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // lunes = 0
	return day.AddDate(0, 0, -offset)
}

func toStockResponse(s *entity.Stock, productName string) *dto.StockResponse {
	return &dto.StockResponse{
		ID:                s.ID,
		ProductID:         s.ProductID,
		ProductName:       productName,
		SupplierID:        s.SupplierID,
		SupplierName:      s.SupplierName,
		OrderQuantity:     s.OrderQuantity,
		DeliveredQuantity: s.DeliveredQuantity,
		AcquisitionPrice:  s.AcquisitionPrice,
		DeliveryDate:      s.DeliveryDate,
		DeliveredDate:     s.DeliveredDate,
		Status:            s.Status,
		CreatedAt:         s.CreatedAt,
	}
}
