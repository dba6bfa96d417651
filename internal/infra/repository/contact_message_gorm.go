package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ContactMessageGormRepository struct {
	db *gorm.DB
}

// DI
func NewContactMessageGormRepository(db *gorm.DB) *ContactMessageGormRepository {
	return &ContactMessageGormRepository{db: db}
}

func (r *ContactMessageGormRepository) Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return model.ContactMessage{}, err
	}
	return msg, nil
}

func (r *ContactMessageGormRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	var msgs []model.ContactMessage
	err := r.db.WithContext(ctx).
		Order("id desc").
		Find(&msgs).Error
	if err != nil {
		return []model.ContactMessage{}, err
	}
	return msgs, nil
}
