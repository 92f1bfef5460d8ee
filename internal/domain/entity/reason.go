package entity

// AdjustmentReason clasifica por qué cambió el inventario fuera del flujo
// normal de venta/recepción. Taxonomía cerrada: la comparten los escritores
// (ajustes manuales, devoluciones) y los reducers de reportes, para evitar
// desajustes silenciosos por strings mal escritos.
type AdjustmentReason string

const (
	ReasonDamaged         AdjustmentReason = "damaged"
	ReasonExpired         AdjustmentReason = "expired"
	ReasonShrinkage       AdjustmentReason = "shrinkage"
	ReasonCorrection      AdjustmentReason = "correction"
	ReasonRestocked       AdjustmentReason = "restocked"
	ReasonCustomerRequest AdjustmentReason = "customer request"
)

// AdjustmentReasons razones aceptadas en ajustes manuales de stock.
var AdjustmentReasons = []AdjustmentReason{
	ReasonDamaged, ReasonExpired, ReasonShrinkage, ReasonCorrection, ReasonRestocked,
}

// RefundReasons razones aceptadas al registrar una devolución.
var RefundReasons = []AdjustmentReason{
	ReasonDamaged, ReasonExpired, ReasonShrinkage, ReasonCustomerRequest,
}

// ValidAdjustmentReason informa si r puede usarse en un ajuste manual.
func ValidAdjustmentReason(r AdjustmentReason) bool {
	return containsReason(AdjustmentReasons, r)
}

// ValidRefundReason informa si r puede usarse en una devolución.
func ValidRefundReason(r AdjustmentReason) bool {
	return containsReason(RefundReasons, r)
}

func containsReason(list []AdjustmentReason, r AdjustmentReason) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}
