package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfferStatus string

const (
	OfferStatusActive OfferStatus = "ACTIVE"
	OfferStatusPaused OfferStatus = "PAUSED"
)

// 店舗が出品する余剰品オファー。
// current_stock が唯一の在庫カウンタで、条件付きUPDATEでだけ動かす。
// 価格・在庫の不変条件はCHECKでも守る（usecaseの検証とは独立）。
type Offer struct {
	ID              int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	EstablishmentID int64 `gorm:"not null;index" json:"establishment_id"`

	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(50)" json:"category"`

	//割引が成立していること
	OriginalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"original_price"`
	SalePrice     decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_offers_price,sale_price < original_price" json:"sale_price"`

	//0 <= current_stock <= initial_stock
	InitialStock int64 `gorm:"not null" json:"initial_stock"`
	CurrentStock int64 `gorm:"not null;check:chk_offers_stock,current_stock >= 0 AND current_stock <= initial_stock" json:"current_stock"`

	//受け取り可能な時間帯（HH:MM）
	PickupStart string `gorm:"type:varchar(5);not null" json:"pickup_start"`
	PickupEnd   string `gorm:"type:varchar(5);not null" json:"pickup_end"`

	Status    OfferStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
