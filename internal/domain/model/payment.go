package model

import "time"

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "PIX"
	PaymentMethodCard PaymentMethod = "CARD"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRefused  PaymentStatus = "REFUSED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// 決済記録。注文と1:1。
// REFUNDED になるのはPAIDの注文がキャンセルされたときだけ。
type PaymentRecord struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"not null;uniqueIndex" json:"order_id"`

	Method PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status PaymentStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//外部決済側の参照ID
	ExternalRef string `gorm:"type:varchar(64);not null" json:"external_ref"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
