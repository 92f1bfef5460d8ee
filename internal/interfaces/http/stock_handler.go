package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
)

// StockHandler maneja órdenes de compra y su ciclo de entrega.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler de órdenes.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// queryDate parsea una fecha YYYY-MM-DD de la query. Vacía o mal formada
// devuelve el cero de time.Time (sin filtro).
func queryDate(c *fiber.Ctx, key string) time.Time {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Create godoc
// @Summary      Registrar orden de compra
// @Description  La orden nace en estado pending y no toca el inventario
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStockRequest true "Orden"
// @Success      201 {object} dto.StockResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	stock, err := h.uc.Place(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         stocks
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | delivered | cancelled"
// @Param        limit  query int    false "Límite (máx 100)"
// @Param        offset query int    false "Desplazamiento"
// @Success      200 {object} dto.StockListResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Deliver godoc
// @Summary      Marcar orden como entregada
// @Description  Suma lo entregado al inventario y actualiza el costo de adquisición. Solo desde pending.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string true "ID de la orden"
// @Param        request body dto.DeliverStockRequest true "Entrega"
// @Success      200 {object} dto.StockResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/stocks/{id}/deliver [post]
func (h *StockHandler) Deliver(c *fiber.Ctx) error {
	var req dto.DeliverStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	stock, err := h.uc.Deliver(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// Cancel godoc
// @Summary      Cancelar orden de compra
// @Description  Solo desde pending; una orden entregada o cancelada no cambia
// @Tags         stocks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la orden"
// @Success      200 {object} dto.StockResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/stocks/{id}/cancel [post]
func (h *StockHandler) Cancel(c *fiber.Ctx) error {
	stock, err := h.uc.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// Summary godoc
// @Summary      Resumen semanal de órdenes
// @Description  Órdenes entregadas agrupadas por semana local (lunes a domingo)
// @Tags         stocks
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {array} dto.OrderSummaryRow
// @Router       /api/stocks/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	rows, err := h.uc.OrderSummary(c.UserContext(), queryDate(c, "from"), queryDate(c, "to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
