package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Category     string         `gorm:"type:varchar(100);not null" json:"category"`
	Price        float64        `gorm:"not null" json:"price"`
	Stock        int64          `gorm:"not null" json:"stock"`
	Brand        string         `gorm:"type:varchar(100)" json:"brand"`
	PetType      string         `gorm:"type:varchar(50)" json:"pet_type"`
	IsFeatured   bool           `gorm:"not null;default:false" json:"is_featured"`
	IsBestSeller bool           `gorm:"not null;default:false" json:"is_best_seller"`
	Image        string         `gorm:"type:text" json:"image"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
