package model

import "time"

type UserType string

const (
	UserTypeConsumer      UserType = "CONSUMER"
	UserTypeEstablishment UserType = "ESTABLISHMENT"
)

// プロフィールだけを持つ。認証は外部コラボレータの責務で、
// ここにパスワードは置かない。
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Type      UserType  `gorm:"type:varchar(20);not null" json:"type"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
