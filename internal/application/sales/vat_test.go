package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// El IVA se extrae del precio IVA incluido: vat = total - total/1.12.
func TestComputeLine_Gravada(t *testing.T) {
	amounts := ComputeLine(d("112"), 1, entity.VatTypeVatable)

	assert.True(t, amounts.Total.Equal(d("112")))
	assert.True(t, amounts.Net.Equal(d("100")), "neto: %s", amounts.Net)
	assert.True(t, amounts.VAT.Equal(d("12")), "iva: %s", amounts.VAT)
}

func TestComputeLine_GravadaConCantidad(t *testing.T) {
	amounts := ComputeLine(d("50"), 2, entity.VatTypeVatable)

	assert.True(t, amounts.Total.Equal(d("100")))
	assert.True(t, amounts.Net.Equal(d("89.29")))
	assert.True(t, amounts.VAT.Equal(d("10.71")))
	// neto + iva reconstruye el total exacto
	assert.True(t, amounts.Net.Add(amounts.VAT).Equal(amounts.Total))
}

func TestComputeLine_ExentaYTasaCero(t *testing.T) {
	for _, vt := range []string{entity.VatTypeExempt, entity.VatTypeZeroRated} {
		amounts := ComputeLine(d("75"), 2, vt)
		assert.True(t, amounts.Total.Equal(d("150")), vt)
		assert.True(t, amounts.Net.Equal(d("150")), vt)
		assert.True(t, amounts.VAT.IsZero(), vt)
	}
}

func TestDiscountFor_Tasas(t *testing.T) {
	gross := d("200")

	assert.True(t, DiscountFor(entity.DiscountSenior, gross).Equal(d("40")), "senior 20%")
	assert.True(t, DiscountFor(entity.DiscountPWD, gross).Equal(d("40")), "pwd 20%")
	assert.True(t, DiscountFor(entity.DiscountPromo, gross).Equal(d("20")), "promo 10%")
	assert.True(t, DiscountFor(entity.DiscountNone, gross).IsZero())
}

// Un tipo desconocido no descuenta nada en vez de fallar.
func TestDiscountFor_TipoDesconocido(t *testing.T) {
	assert.True(t, DiscountFor("vip", d("200")).IsZero())
}
