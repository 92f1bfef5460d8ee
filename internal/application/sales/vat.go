// Package sales contiene los casos de uso de ventas y devoluciones.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// Divisor de IVA filipino: los precios son IVA incluido al 12%.
var vatDivisor = decimal.NewFromFloat(1.12)

// Tasas de descuento por tipo. senior y pwd llevan el 20% legal; promo es
// el descuento de tienda.
var discountRates = map[string]decimal.Decimal{
	entity.DiscountNone:   decimal.Zero,
	entity.DiscountSenior: decimal.NewFromFloat(0.20),
	entity.DiscountPWD:    decimal.NewFromFloat(0.20),
	entity.DiscountPromo:  decimal.NewFromFloat(0.10),
}

// LineAmounts montos derivados de una línea: total IVA incluido, neto y IVA.
type LineAmounts struct {
	Total decimal.Decimal
	Net   decimal.Decimal
	VAT   decimal.Decimal
}

// ComputeLine calcula los montos de una línea según el tipo de IVA del
// producto. Para líneas gravadas el IVA se extrae del precio (IVA incluido):
// vat = total - total/1.12. Exentas y tasa cero no llevan IVA.
func ComputeLine(price decimal.Decimal, qty int64, vatType string) LineAmounts {
	total := price.Mul(decimal.NewFromInt(qty))
	if vatType != entity.VatTypeVatable {
		return LineAmounts{Total: total, Net: total, VAT: decimal.Zero}
	}
	net := total.Div(vatDivisor).Round(2)
	vat := total.Sub(net)
	return LineAmounts{Total: total, Net: net, VAT: vat}
}

// DiscountFor devuelve el descuento sobre gross para el tipo dado.
// Un tipo desconocido no descuenta nada.
func DiscountFor(discountType string, gross decimal.Decimal) decimal.Decimal {
	rate, ok := discountRates[discountType]
	if !ok {
		return decimal.Zero
	}
	return gross.Mul(rate).Round(2)
}
