package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

// Test: 即時決済は常に承認し、外部参照を採番する
func TestInstantSettlementApproves(t *testing.T) {
	s := &InstantSettlement{}

	res, err := s.Settle(context.Background(), 1, decimal.RequireFromString("25.00"))

	assert.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Equal(t, model.PaymentMethodPix, res.Method)
	assert.NotEmpty(t, res.ExternalRef)
}

// Test: 外部参照は呼び出しごとに変わる
func TestInstantSettlementUniqueRefs(t *testing.T) {
	s := &InstantSettlement{}

	a, _ := s.Settle(context.Background(), 1, decimal.RequireFromString("10.00"))
	b, _ := s.Settle(context.Background(), 1, decimal.RequireFromString("10.00"))

	assert.NotEqual(t, a.ExternalRef, b.ExternalRef)
}
