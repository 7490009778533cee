package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

type SettlementResult struct {
	Approved    bool
	Method      model.PaymentMethod
	ExternalRef string
}

// 決済ステップ。本来は非同期で失敗もあり得るので差し替え可能にしておく。
type Settlement interface {
	Settle(ctx context.Context, consumerID int64, amount decimal.Decimal) (SettlementResult, error)
}

// デモ用の即時承認決済。
type InstantSettlement struct{}

func (s *InstantSettlement) Settle(ctx context.Context, consumerID int64, amount decimal.Decimal) (SettlementResult, error) {
	return SettlementResult{
		Approved:    true,
		Method:      model.PaymentMethodPix,
		ExternalRef: uuid.NewString(),
	}, nil
}
