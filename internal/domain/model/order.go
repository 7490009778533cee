package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusReserved OrderStatus = "RESERVED"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusPickedUp OrderStatus = "PICKED_UP"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// 許可された遷移だけを定義する。未定義のペアは全部拒否。
// PICKED_UP / CANCELED は終端。
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusReserved: {OrderStatusPaid: true, OrderStatusPickedUp: true, OrderStatusCanceled: true},
	OrderStatusPaid:     {OrderStatusPickedUp: true, OrderStatusCanceled: true},
	OrderStatusPickedUp: {},
	OrderStatusCanceled: {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// 1つのオファーに対する1消費者の予約。
// total_value は作成時に確定して以後変更しない。
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsumerID int64           `gorm:"not null;index" json:"consumer_id"`
	OfferID    int64           `gorm:"not null;index" json:"offer_id"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	TotalValue decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_value"`

	//受け取りコード。全注文を通して一意、変更不可。
	PickupCode string `gorm:"type:varchar(8);not null;uniqueIndex" json:"pickup_code"`

	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`

	//受け取り時だけセットする
	PickedUpAt *time.Time `json:"picked_up_at,omitempty"`
}
