package dto

import "github.com/shopspring/decimal"

// ReportRangeRequest rango de días para un reporte. Fechas vacías o mal
// formadas se tratan como "sin filtro", nunca como error.
type ReportRangeRequest struct {
	From string `query:"from"` // YYYY-MM-DD
	To   string `query:"to"`   // YYYY-MM-DD
}

// InventoryReportRow reconciliación de un producto en el rango pedido.
// Cada métrica sale de su propio ledger; no se derivan unas de otras.
type InventoryReportRow struct {
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	ProductName     string `json:"product_name"`
	CategoryName    string `json:"category_name"`
	OnHand          int64  `json:"on_hand"`
	Sold            int64  `json:"sold"`
	Damaged         int64  `json:"damaged"`
	Expired         int64  `json:"expired"`
	Shrinkage       int64  `json:"shrinkage"`
	Correction      int64  `json:"correction"`
	Restocked       int64  `json:"restocked"`
	CustomerRequest int64  `json:"customer_request"`
}

// InventoryOrderRow orden entregada dentro del reporte. Date es el día
// local de entrega; DeliveryDate, el día pactado.
type InventoryOrderRow struct {
	Date              string          `json:"date"`          // YYYY-MM-DD
	DeliveryDate      string          `json:"delivery_date"` // YYYY-MM-DD
	SKU               string          `json:"sku"`
	ProductName       string          `json:"product_name"`
	SupplierName      string          `json:"supplier_name"`
	OrderQuantity     int64           `json:"order_quantity"`
	DeliveredQuantity int64           `json:"delivered_quantity"`
	AcquisitionPrice  decimal.Decimal `json:"acquisition_price"`
	Status            string          `json:"status"`
}

// InventoryRefundRow devolución individual dentro del reporte.
type InventoryRefundRow struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
}

// RefundReasonSummaryRow total devuelto por razón en el rango. Las razones
// de la taxonomía aparecen siempre, con cero si no hubo devoluciones.
type RefundReasonSummaryRow struct {
	Reason   string `json:"reason"`
	Quantity int64  `json:"quantity"`
}

// InventoryAdjustmentRow ajuste manual dentro del reporte.
type InventoryAdjustmentRow struct {
	Date             string `json:"date"` // YYYY-MM-DD
	SKU              string `json:"sku"`
	ProductName      string `json:"product_name"`
	Change           int64  `json:"change"`
	PreviousQuantity int64  `json:"previous_quantity"`
	AdjustedQuantity int64  `json:"adjusted_quantity"`
	Reason           string `json:"reason"`
	Note             string `json:"note"`
}

// InventoryBreakdownRow foto de stock registrada dentro del rango.
type InventoryBreakdownRow struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	Quantity         int64           `json:"quantity"`
	PrevQuantity     int64           `json:"prev_quantity"`
	AcquisitionPrice decimal.Decimal `json:"acquisition_price"`
}

// InventoryReportResponse reporte de inventario del rango: reconciliación
// por producto más las tablas de soporte (órdenes, stock bajo, devoluciones,
// ajustes y fotos del rango).
// TotalInventoryValue es la valuación ACTUAL del inventario activo, no
// una valuación histórica del rango.
type InventoryReportResponse struct {
	From                string                   `json:"from"`
	To                  string                   `json:"to"`
	Rows                []InventoryReportRow     `json:"rows"`
	Orders              []InventoryOrderRow      `json:"orders"`
	LowStock            []InventorySummaryRow    `json:"low_stock"`
	Refunds             []InventoryRefundRow     `json:"refunds"`
	RefundSummary       []RefundReasonSummaryRow `json:"refund_summary"`
	Adjustments         []InventoryAdjustmentRow `json:"adjustments"`
	Breakdown           []InventoryBreakdownRow  `json:"breakdown"`
	TotalQuantitySold   int64                    `json:"total_quantity_sold"`
	TotalRefunds        int64                    `json:"total_refunds"`
	TotalInventoryValue decimal.Decimal          `json:"total_inventory_value"`
}

// TopSellerRow vendedor top por SKU o por categoría.
type TopSellerRow struct {
	Key      string          `json:"key"` // SKU o nombre de categoría
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalesReportTransactionRow una venta dentro del desglose diario.
type SalesReportTransactionRow struct {
	ReceiptNum    string          `json:"receipt_num"`
	Quantity      int64           `json:"quantity"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	VatAmount     decimal.Decimal `json:"vat_amount"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DailySalesRow desglose de un día calendario local, con sus ventas.
// Los montos del día salen de las cabeceras almacenadas.
type DailySalesRow struct {
	Date             string                      `json:"date"` // YYYY-MM-DD
	TransactionCount int64                       `json:"transaction_count"`
	Quantity         int64                       `json:"quantity"`
	GrossAmount      decimal.Decimal             `json:"gross_amount"`
	VatAmount        decimal.Decimal             `json:"vat_amount"`
	TotalDiscount    decimal.Decimal             `json:"total_discount"`
	TotalAmount      decimal.Decimal             `json:"total_amount"`
	Transactions     []SalesReportTransactionRow `json:"transactions"`
}

// SalesReportResponse reporte de ventas del rango. GrossSales se recalcula
// desde las líneas (precio x cantidad) y puede diferir de la suma de
// cabeceras si estas quedaron desfasadas.
type SalesReportResponse struct {
	From           string          `json:"from"`
	To             string          `json:"to"`
	Volume         int64           `json:"volume"`
	GrossSales     decimal.Decimal `json:"gross_sales"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalVAT       decimal.Decimal `json:"total_vat"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	TopBySKU       []TopSellerRow  `json:"top_by_sku"`
	TopByCategory  []TopSellerRow  `json:"top_by_category"`
	DailyBreakdown []DailySalesRow `json:"daily_breakdown"`
}

// InventoryMovementRow totales de movimiento de un producto en el rango.
// QtyOnHand sale de la última foto de inventario anterior al corte.
type InventoryMovementRow struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name"`
	QtyReceived  int64  `json:"qty_received"`
	QtySold      int64  `json:"qty_sold"`
	QtyRefunded  int64  `json:"qty_refunded"`
	QtyOnHand    int64  `json:"qty_on_hand"`
}

// InventoryMovementsResponse resumen de movimientos por producto del rango.
type InventoryMovementsResponse struct {
	From string                 `json:"from"`
	To   string                 `json:"to"`
	Rows []InventoryMovementRow `json:"rows"`
}

// MovementEntry un movimiento fechado dentro del detalle por producto.
type MovementEntry struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// ProductMovementsResponse detalle de movimientos de un producto: entregas,
// ventas y devoluciones del rango, cada historial en orden cronológico.
type ProductMovementsResponse struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	Receives     []MovementEntry `json:"receives"`
	Sales        []MovementEntry `json:"sales"`
	Refunds      []MovementEntry `json:"refunds"`
}

// InventorySummaryRow fila del resumen de inventario actual.
type InventorySummaryRow struct {
	ProductID        string          `json:"product_id"`
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	CategoryName     string          `json:"category_name"`
	Quantity         int64           `json:"quantity"`
	AcquisitionPrice decimal.Decimal `json:"acquisition_price"`
	TotalValue       decimal.Decimal `json:"total_value"`
	StockStatus      string          `json:"stock_status"`
}

// InventorySummaryResponse resumen del inventario activo actual.
type InventorySummaryResponse struct {
	Rows                []InventorySummaryRow `json:"rows"`
	TotalInventoryValue decimal.Decimal       `json:"total_inventory_value"`
}
