package model

import "time"

// 受け取り済み注文への評価。注文ごとに1件。
type Review struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"not null;uniqueIndex" json:"order_id"`

	//1〜5
	Rating int `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`

	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
