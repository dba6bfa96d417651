package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PaymentMethodGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

func (r *PaymentMethodGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	var pms []model.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&pms).Error
	if err != nil {
		return []model.PaymentMethod{}, err
	}
	return pms, nil
}

func (r *PaymentMethodGormRepository) Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	if err := r.db.WithContext(ctx).Create(&pm).Error; err != nil {
		return model.PaymentMethod{}, err
	}
	return pm, nil
}

// 他人のカードは消せない（user_idも条件に入れる）
func (r *PaymentMethodGormRepository) DeleteOwned(ctx context.Context, userID int64, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
