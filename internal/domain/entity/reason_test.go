package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAdjustmentReason(t *testing.T) {
	for _, r := range AdjustmentReasons {
		assert.True(t, ValidAdjustmentReason(r), string(r))
	}
	// customer request es razón de devolución, no de ajuste manual
	assert.False(t, ValidAdjustmentReason(ReasonCustomerRequest))
	assert.False(t, ValidAdjustmentReason("typo"))
}

func TestValidRefundReason(t *testing.T) {
	for _, r := range RefundReasons {
		assert.True(t, ValidRefundReason(r), string(r))
	}
	// correction y restocked no existen como razones de devolución
	assert.False(t, ValidRefundReason(ReasonCorrection))
	assert.False(t, ValidRefundReason(ReasonRestocked))
	assert.False(t, ValidRefundReason(""))
}
