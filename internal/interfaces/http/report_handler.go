package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
)

// ReportHandler expone los reportes de inventario y ventas y sus
// exportaciones a PDF y XLSX.
type ReportHandler struct {
	inventory *report.InventoryReportUseCase
	sales     *report.SalesReportUseCase
	summary   *report.InventorySummaryUseCase
	export    *report.ExportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(
	inventory *report.InventoryReportUseCase,
	sales *report.SalesReportUseCase,
	summary *report.InventorySummaryUseCase,
	export *report.ExportUseCase,
) *ReportHandler {
	return &ReportHandler{inventory: inventory, sales: sales, summary: summary, export: export}
}

func rangeFromQuery(c *fiber.Ctx) dto.ReportRangeRequest {
	return dto.ReportRangeRequest{From: c.Query("from"), To: c.Query("to")}
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Description  Reconciliación por producto activo: stock a la fecha, vendidos, mermas por razón, correcciones y reposiciones del rango. Fechas vacías o inválidas no filtran.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {object} dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	rep, err := h.inventory.Generate(c.UserContext(), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  Totales del rango, top 10 por SKU y por categoría, y desglose diario con sus recibos
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {object} dto.SalesReportResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	rep, err := h.sales.Generate(c.UserContext(), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// Summary godoc
// @Summary      Resumen de inventario actual
// @Description  Valuación del inventario activo a hoy, con estado de stock por producto
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InventorySummaryResponse
// @Router       /api/reports/inventory/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.summary.Generate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sum)
}

// Movements godoc
// @Summary      Movimientos de inventario
// @Description  Recibido, vendido, devuelto y stock al corte por producto activo. Fechas vacías o inválidas no filtran.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {object} dto.InventoryMovementsResponse
// @Router       /api/reports/inventory/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	rep, err := h.summary.Movements(c.UserContext(), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rep)
}

// ProductMovements godoc
// @Summary      Detalle de movimientos de un producto
// @Description  Historiales de entregas, ventas y devoluciones del producto dentro del rango
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        productId path  string true  "ID del producto"
// @Param        from      query string false "YYYY-MM-DD"
// @Param        to        query string false "YYYY-MM-DD"
// @Success      200 {object} dto.ProductMovementsResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/reports/inventory/movements/{productId} [get]
func (h *ReportHandler) ProductMovements(c *fiber.Ctx) error {
	det, err := h.summary.ProductDetails(c.UserContext(), c.Params("productId"), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	if det == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(det)
}

// SalesPDF godoc
// @Summary      Exportar reporte de ventas a PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {file} binary
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	out, err := h.export.SalesPDF(c.UserContext(), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("reporte-ventas-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// InventoryXLSX godoc
// @Summary      Exportar inventario a XLSX
// @Description  Una hoja con el resumen valuado actual y otra con los movimientos del rango
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        from query string false "YYYY-MM-DD"
// @Param        to   query string false "YYYY-MM-DD"
// @Success      200 {file} binary
// @Router       /api/reports/inventory/xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	out, err := h.export.InventoryXLSX(c.UserContext(), rangeFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
