package model

import "time"

// カード番号そのものは保持しない。下4桁だけ。
type PaymentMethod struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	Type       string    `gorm:"type:varchar(50);not null" json:"type"`
	LastFour   string    `gorm:"type:varchar(4);not null" json:"last_four"`
	ExpiryDate string    `gorm:"type:varchar(10);not null" json:"expiry_date"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
