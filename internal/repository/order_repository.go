package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

// 受け取りコード検索の結果行（表示用にオファー・店舗をJOIN）
type PickupRow struct {
	OrderID       int64
	Status        model.OrderStatus
	OfferTitle    string
	Establishment string
}

// 消費者向け注文一覧の行
type ConsumerOrderRow struct {
	ID            int64             `json:"id"`
	PickupCode    string            `json:"pickup_code"`
	TotalValue    decimal.Decimal   `json:"total_value"`
	Status        model.OrderStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	OfferTitle    string            `json:"offer_title"`
	Establishment string            `json:"establishment"`
	Address       string            `json:"address"`
	PickupStart   string            `json:"pickup_start"`
	PickupEnd     string            `json:"pickup_end"`
}

// 店舗向け注文一覧の行
type EstablishmentOrderRow struct {
	ID            int64             `json:"id"`
	PickupCode    string            `json:"pickup_code"`
	TotalValue    decimal.Decimal   `json:"total_value"`
	Status        model.OrderStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	OfferTitle    string            `json:"offer_title"`
	ConsumerName  string            `json:"consumer_name"`
	ConsumerPhone string            `json:"consumer_phone"`
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByCode(ctx context.Context, code string) (PickupRow, error)

	//事前ステータスが一致するときだけ遷移させる（RowsAffectedで確認）
	TransitionStatus(ctx context.Context, orderID int64, from model.OrderStatus, to model.OrderStatus) (bool, error)

	//ステータス遷移と受け取り時刻の記録を1回のUPDATEで行う
	MarkPickedUp(ctx context.Context, orderID int64, from model.OrderStatus, at time.Time) (bool, error)

	ListByConsumer(ctx context.Context, consumerID int64) ([]ConsumerOrderRow, error)
	ListByEstablishment(ctx context.Context, establishmentID int64) ([]EstablishmentOrderRow, error)
}
