package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/sales"
)

// TransactionHandler maneja ventas y devoluciones.
type TransactionHandler struct {
	transactions *sales.TransactionUseCase
	refunds      *sales.RefundUseCase
}

// NewTransactionHandler construye el handler de ventas.
func NewTransactionHandler(transactions *sales.TransactionUseCase, refunds *sales.RefundUseCase) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, refunds: refunds}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta inventario, calcula IVA por tipo de producto y emite número de recibo
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTransactionRequest true "Venta"
// @Success      201 {object} dto.TransactionResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	tx, err := h.transactions.Create(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la venta"
// @Success      200 {object} dto.TransactionResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	tx, err := h.transactions.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if tx == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(tx)
}

// List godoc
// @Summary      Listar ventas
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        from   query string false "YYYY-MM-DD"
// @Param        to     query string false "YYYY-MM-DD"
// @Param        limit  query int    false "Límite (máx 100)"
// @Param        offset query int    false "Desplazamiento"
// @Success      200 {object} dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	list, err := h.transactions.List(c.UserContext(), queryDate(c, "from"), queryDate(c, "to"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Void godoc
// @Summary      Anular venta
// @Description  Borrado lógico de la venta; el inventario NO se restaura, corregir stock con un ajuste manual
// @Tags         transactions
// @Security     BearerAuth
// @Param        id path string true "ID de la venta"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Void(c *fiber.Ctx) error {
	if err := h.transactions.Void(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateRefund godoc
// @Summary      Registrar devolución
// @Description  Devuelve una línea de venta; solo la razón "customer request" repone inventario
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateRefundRequest true "Devolución"
// @Success      201 {object} dto.RefundResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /api/refunds [post]
func (h *TransactionHandler) CreateRefund(c *fiber.Ctx) error {
	var req dto.CreateRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo JSON inválido"})
	}
	refund, err := h.refunds.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(refund)
}

// GetRefund godoc
// @Summary      Obtener devolución
// @Tags         refunds
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la devolución"
// @Success      200 {object} dto.RefundResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/refunds/{id} [get]
func (h *TransactionHandler) GetRefund(c *fiber.Ctx) error {
	refund, err := h.refunds.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if refund == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "devolución no encontrada"})
	}
	return c.JSON(refund)
}

// ListRefunds godoc
// @Summary      Listar devoluciones
// @Tags         refunds
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RefundResponse
// @Router       /api/refunds [get]
func (h *TransactionHandler) ListRefunds(c *fiber.Ctx) error {
	refunds, err := h.refunds.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(refunds)
}
