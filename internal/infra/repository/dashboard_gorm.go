package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

// DI
func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) Stats(ctx context.Context) (repo.DashboardStats, error) {
	var stats repo.DashboardStats

	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return repo.DashboardStats{}, err
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return repo.DashboardStats{}, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return repo.DashboardStats{}, err
	}

	//売上はキャンセル除外で合計
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalSales).Error
	if err != nil {
		return repo.DashboardStats{}, err
	}

	return stats, nil
}
