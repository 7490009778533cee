package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ユニーク制約違反（受け取りコード等）
var ErrConflict = errors.New("conflict")

// 公開中オファーの一覧行（店舗情報をJOINした結果）
type ActiveOfferRow struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CurrentStock  int64           `json:"current_stock"`
	PickupStart   string          `json:"pickup_start"`
	PickupEnd     string          `json:"pickup_end"`
	Establishment string          `json:"establishment"`
	Address       string          `json:"address"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
}

type OfferRepository interface {
	Create(ctx context.Context, offer model.Offer) (int64, error)
	FindByID(ctx context.Context, offerID int64) (model.Offer, error)

	//事前ステータスが一致するときだけ更新する（RowsAffectedで確認）
	UpdateStatus(ctx context.Context, offerID int64, from model.OfferStatus, to model.OfferStatus) (bool, error)

	//公開中かつ在庫ありのオファー一覧
	ListActive(ctx context.Context) ([]ActiveOfferRow, error)
}
