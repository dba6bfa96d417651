package model

import "time"

type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"` //注文時点のカタログ価格スナップショット
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
