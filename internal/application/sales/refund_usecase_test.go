package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/sales"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// sellOne registra una venta de qty unidades y devuelve el ID de la línea.
func sellOne(t *testing.T, fx *salesFixture, qty int64) string {
	t.Helper()
	uc := sales.NewTransactionUseCase(fx.txns, fx.runner)
	resp, err := uc.Create(context.Background(), "cashier-1", dto.CreateTransactionRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: qty}},
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	return resp.Items[0].ID
}

// Devolución por pedido del cliente: la mercadería vuelve al stock vendible
// y queda una foto en el historial.
func TestRefundCreate_CustomerRequestReponeStock(t *testing.T) {
	fx := newSalesFixture()
	fx.addProduct("p1", entity.VatTypeVatable, dec("112"), 10)
	itemID := sellOne(t, fx, 3)
	require.EqualValues(t, 7, fx.inventory.byProduct["p1"].Quantity)
	recordsBefore := len(fx.records.records)

	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)
	resp, err := uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: itemID,
		Quantity:          3,
		Reason:            string(entity.ReasonCustomerRequest),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 3, resp.Quantity)
	assert.True(t, resp.RefundPrice.Equal(dec("112")), "se devuelve al precio vendido")
	assert.EqualValues(t, 10, fx.inventory.byProduct["p1"].Quantity, "el stock se repone")
	assert.Len(t, fx.records.records, recordsBefore+1, "la reposición deja una foto")
}

// Mercadería dañada no vuelve al inventario vendible.
func TestRefundCreate_DamagedNoReponeStock(t *testing.T) {
	fx := newSalesFixture()
	fx.addProduct("p1", entity.VatTypeVatable, dec("112"), 10)
	itemID := sellOne(t, fx, 3)
	recordsBefore := len(fx.records.records)

	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)
	_, err := uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: itemID,
		Quantity:          3,
		Reason:            string(entity.ReasonDamaged),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, fx.inventory.byProduct["p1"].Quantity, "dañado no repone")
	assert.Len(t, fx.records.records, recordsBefore, "sin reposición no hay foto nueva")
	require.Len(t, fx.refunds.created, 1)
	assert.Equal(t, entity.ReasonDamaged, fx.refunds.created[0].Reason)
}

// Una línea ya devuelta no puede devolverse de nuevo.
func TestRefundCreate_LineaYaDevuelta(t *testing.T) {
	fx := newSalesFixture()
	fx.addProduct("p1", entity.VatTypeVatable, dec("112"), 10)
	itemID := sellOne(t, fx, 2)

	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)
	_, err := uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: itemID, Quantity: 2, Reason: string(entity.ReasonExpired),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: itemID, Quantity: 2, Reason: string(entity.ReasonExpired),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// No se pueden devolver más unidades que las vendidas en la línea.
func TestRefundCreate_CantidadMayorALaVendida(t *testing.T) {
	fx := newSalesFixture()
	fx.addProduct("p1", entity.VatTypeVatable, dec("112"), 10)
	itemID := sellOne(t, fx, 2)

	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)
	_, err := uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: itemID, Quantity: 5, Reason: string(entity.ReasonDamaged),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Razones fuera de la taxonomía de devoluciones se rechazan antes de tocar
// nada.
func TestRefundCreate_RazonInvalida(t *testing.T) {
	fx := newSalesFixture()
	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)

	for _, reason := range []string{"correction", "restocked", "porque sí", ""} {
		_, err := uc.Create(context.Background(), dto.CreateRefundRequest{
			TransactionItemID: "item-1", Quantity: 1, Reason: reason,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidReason, reason)
	}
}

func TestRefundCreate_LineaInexistente(t *testing.T) {
	fx := newSalesFixture()
	uc := sales.NewRefundUseCase(fx.refunds, fx.runner)

	_, err := uc.Create(context.Background(), dto.CreateRefundRequest{
		TransactionItemID: "nope", Quantity: 1, Reason: string(entity.ReasonDamaged),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
