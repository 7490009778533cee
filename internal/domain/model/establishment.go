package model

// 店舗プロフィール。ユーザーごとに1件。
type Establishment struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64   `gorm:"not null;uniqueIndex" json:"user_id"`
	TradeName string  `gorm:"type:varchar(255);not null" json:"trade_name"`
	CNPJ      string  `gorm:"type:varchar(20);uniqueIndex" json:"cnpj"`
	Address   string  `gorm:"type:varchar(255)" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
