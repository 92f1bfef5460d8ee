package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// ReportPeriod rango de días calendario en una zona horaria fija.
// Los límites son inclusivos y se comparan como strings YYYY-MM-DD contra
// el timestamp convertido a la zona local. Un límite vacío significa
// "sin filtro" por ese lado.
type ReportPeriod struct {
	Timezone string // IANA, p. ej. Asia/Manila
	FromDay  string // YYYY-MM-DD inclusive; "" = sin límite inferior
	ToDay    string // YYYY-MM-DD inclusive; "" = sin límite superior
}

// ProductInfoRow producto activo con su categoría resuelta. CategoryName
// viene vacío si la categoría fue borrada; la presentación decide el
// placeholder.
type ProductInfoRow struct {
	ProductID    string
	SKU          string
	Name         string
	CategoryName string
}

// DeliveredStockRow entrega de mercadería dentro del período (restocked).
type DeliveredStockRow struct {
	ProductID        string
	Quantity         int64 // delivered_quantity
	AcquisitionPrice decimal.Decimal
}

// ReasonQtyRow cantidad agregada por producto y razón. Para ajustes la
// cantidad ya viene en valor absoluto; para devoluciones es la cantidad
// devuelta.
type ReasonQtyRow struct {
	ProductID string
	Reason    entity.AdjustmentReason
	Quantity  int64
}

// SignedChangeRow suma con signo de ajustes por producto y razón.
// Se usa para "correction", donde el signo importa.
type SignedChangeRow struct {
	ProductID string
	Reason    entity.AdjustmentReason
	Change    int64
}

// ProductQtyRow cantidad agregada por producto.
type ProductQtyRow struct {
	ProductID string
	Quantity  int64
}

// StockSnapshotRow última foto de inventario de un producto antes del corte.
type StockSnapshotRow struct {
	ProductID        string
	Quantity         int64
	AcquisitionPrice decimal.Decimal
}

// CurrentInventoryRow inventario activo actual con referencias resueltas.
type CurrentInventoryRow struct {
	ProductID         string
	SKU               string
	ProductName       string
	CategoryName      string
	Quantity          int64
	AcquisitionPrice  decimal.Decimal
	LowStockThreshold int64
}

// OrderReportRow orden de compra entregada dentro del período, con producto
// y proveedor resueltos. Day es el día local de entrega; DeliveryDay, el día
// local pactado de entrega.
type OrderReportRow struct {
	SKU               string
	ProductName       string
	SupplierName      string
	OrderQuantity     int64
	DeliveredQuantity int64
	AcquisitionPrice  decimal.Decimal
	Status            string
	DeliveryDay       string // YYYY-MM-DD
	Day               string // YYYY-MM-DD
}

// RefundReportRow devolución individual dentro del período.
type RefundReportRow struct {
	SKU         string
	ProductName string
	Quantity    int64
	Amount      decimal.Decimal
	Reason      entity.AdjustmentReason
	Day         string // YYYY-MM-DD
}

// AdjustmentReportRow ajuste manual dentro del período.
type AdjustmentReportRow struct {
	SKU              string
	ProductName      string
	Change           int64
	PreviousQuantity int64
	AdjustedQuantity int64
	Reason           entity.AdjustmentReason
	Note             string
	Day              string // YYYY-MM-DD
}

// SnapshotBreakdownRow foto de inventario registrada dentro del período.
type SnapshotBreakdownRow struct {
	SKU              string
	ProductName      string
	Quantity         int64
	PrevQuantity     int64
	AcquisitionPrice decimal.Decimal
	Day              string // YYYY-MM-DD
}

// ProductMovementRow movimiento fechado de un solo producto dentro del
// período. Reference identifica el origen según el ledger: nombre del
// proveedor para entregas, número de recibo para ventas, razón para
// devoluciones.
type ProductMovementRow struct {
	Day       string // YYYY-MM-DD en la zona del período
	Quantity  int64
	Amount    decimal.Decimal
	Reference string
}

// SaleItemRow línea de venta con sus referencias resueltas. SKU, nombre y
// categoría pueden venir vacíos si la referencia ya no existe; el agregador
// aplica el placeholder de presentación, nunca falla.
type SaleItemRow struct {
	ProductID        string
	SKU              string
	ProductName      string
	CategoryName     string
	Quantity         int64
	Price            decimal.Decimal // precio unitario de venta
	AcquisitionPrice decimal.Decimal // costo vigente del producto
	NetAmount        decimal.Decimal
	VatAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	SoldAt           time.Time // created_at de la transacción padre
}

// SaleHeaderRow cabecera de venta dentro del período, en orden cronológico.
// Day es el día calendario local ya derivado por la consulta.
type SaleHeaderRow struct {
	TransactionID string
	ReceiptNum    string
	Day           string // YYYY-MM-DD en la zona del período
	Quantity      int64
	GrossAmount   decimal.Decimal
	VatAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalDiscount decimal.Decimal
	CreatedAt     time.Time
}

// ReportRepository define las consultas de lectura para los reportes de
// inventario y ventas. Las implementaciones son read-only: cada método es
// una consulta acotada y sin estado, los reportes se arman en memoria en
// el use case.
type ReportRepository interface {
	// ListActiveProducts devuelve los productos activos con su categoría
	// resuelta (nombre vacío si la categoría fue borrada).
	ListActiveProducts(ctx context.Context) ([]ProductInfoRow, error)

	// ListDeliveredStock devuelve las entregas con delivered_date dentro
	// del período, agrupadas por producto.
	ListDeliveredStock(ctx context.Context, p ReportPeriod) ([]DeliveredStockRow, error)

	// ListAdjustmentTotals devuelve Σ|change| por producto y razón dentro
	// del período.
	ListAdjustmentTotals(ctx context.Context, p ReportPeriod) ([]ReasonQtyRow, error)

	// ListAdjustmentChanges devuelve Σ change (con signo) por producto y
	// razón dentro del período.
	ListAdjustmentChanges(ctx context.Context, p ReportPeriod) ([]SignedChangeRow, error)

	// ListRefundTotals devuelve Σ quantity por producto y razón de las
	// devoluciones no borradas dentro del período.
	ListRefundTotals(ctx context.Context, p ReportPeriod) ([]ReasonQtyRow, error)

	// ListSoldTotals devuelve Σ quantity por producto de las líneas no
	// borradas cuyo padre cae dentro del período.
	ListSoldTotals(ctx context.Context, p ReportPeriod) ([]ProductQtyRow, error)

	// SnapshotAt devuelve la última foto de inventario de cada producto
	// con fecha <= cutoff.
	SnapshotAt(ctx context.Context, cutoff time.Time) ([]StockSnapshotRow, error)

	// ListCurrentInventory devuelve el inventario activo actual con sus
	// referencias resueltas, para el resumen y la exportación.
	ListCurrentInventory(ctx context.Context) ([]CurrentInventoryRow, error)

	// CurrentInventoryValue devuelve Σ quantity*acquisition_price del
	// inventario activo actual, sin filtrar por período.
	CurrentInventoryValue(ctx context.Context) (decimal.Decimal, error)

	// ListOrderRows devuelve las órdenes entregadas con delivered_date
	// dentro del período, en orden cronológico de entrega.
	ListOrderRows(ctx context.Context, p ReportPeriod) ([]OrderReportRow, error)

	// ListRefundRows devuelve las devoluciones no borradas dentro del
	// período, en orden cronológico.
	ListRefundRows(ctx context.Context, p ReportPeriod) ([]RefundReportRow, error)

	// ListAdjustmentRows devuelve los ajustes manuales dentro del período,
	// en orden cronológico.
	ListAdjustmentRows(ctx context.Context, p ReportPeriod) ([]AdjustmentReportRow, error)

	// ListSnapshotRows devuelve las fotos de inventario registradas dentro
	// del período, en orden cronológico.
	ListSnapshotRows(ctx context.Context, p ReportPeriod) ([]SnapshotBreakdownRow, error)

	// ListProductReceives devuelve las entregas de un producto dentro del
	// período, en orden cronológico, con el proveedor resuelto.
	ListProductReceives(ctx context.Context, productID string, p ReportPeriod) ([]ProductMovementRow, error)

	// ListProductSales devuelve las líneas vendidas de un producto dentro
	// del período, en orden cronológico, con el número de recibo.
	ListProductSales(ctx context.Context, productID string, p ReportPeriod) ([]ProductMovementRow, error)

	// ListProductRefunds devuelve las devoluciones de un producto dentro
	// del período, en orden cronológico, con su razón.
	ListProductRefunds(ctx context.Context, productID string, p ReportPeriod) ([]ProductMovementRow, error)

	// ListSaleItems devuelve las líneas no borradas ni devueltas cuyo
	// padre cae dentro del período, en orden cronológico de venta.
	ListSaleItems(ctx context.Context, p ReportPeriod) ([]SaleItemRow, error)

	// ListSaleHeaders devuelve las cabeceras no borradas dentro del
	// período, en orden cronológico.
	ListSaleHeaders(ctx context.Context, p ReportPeriod) ([]SaleHeaderRow, error)
}
