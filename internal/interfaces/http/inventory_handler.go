package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
)

// InventoryHandler expone el inventario vigente, su historial y los
// ajustes manuales.
type InventoryHandler struct {
	inventory   *usecase.InventoryUseCase
	adjustments *usecase.AdjustmentUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(inventory *usecase.InventoryUseCase, adjustments *usecase.AdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, adjustments: adjustments}
}

// List godoc
// @Summary      Listar inventario
// @Description  Stock vigente por producto activo, con estado derivado del umbral
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Límite (máx 100)"
// @Param        offset query int false "Desplazamiento"
// @Success      200 {object} dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.inventory.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByProduct godoc
// @Summary      Inventario de un producto
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string true "ID del producto"
// @Success      200 {object} dto.InventoryResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/inventory/{productId} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	inv, err := h.inventory.GetByProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(inv)
}

// History godoc
// @Summary      Historial de inventario
// @Description  Fotos de stock de un producto, de la más reciente a la más vieja
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string true "ID del producto"
// @Success      200 {array} dto.InventoryRecordResponse
// @Router       /api/inventory/{productId}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	records, err := h.inventory.History(c.UserContext(), c.Params("productId"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// Snapshot godoc
// @Summary      Foto diaria de inventario
// @Description  Registra una foto de stock de todos los productos activos
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int
// @Router       /api/inventory/snapshot [post]
func (h *InventoryHandler) Snapshot(c *fiber.Ctx) error {
	n, err := h.inventory.RecordDailySnapshot(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"recorded": n})
}

// CreateAdjustment godoc
// @Summary      Ajuste manual de inventario
// @Description  Aplica un delta con signo y razón controlada (damaged, expired, shrinkage, correction, restocked)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAdjustmentRequest true "Ajuste"
// @Success      201 {object} dto.AdjustmentResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *InventoryHandler) CreateAdjustment(c *fiber.Ctx) error {
	var req dto.CreateAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	adj, err := h.adjustments.Create(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(adj)
}

// ListAdjustments godoc
// @Summary      Listar ajustes manuales
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filtrar por producto"
// @Success      200 {array} dto.AdjustmentResponse
// @Router       /api/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *fiber.Ctx) error {
	adjs, err := h.adjustments.List(c.UserContext(), c.Query("product_id"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(adjs)
}
