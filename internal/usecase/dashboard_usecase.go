package usecase

import (
	"context"

	repo "app/internal/repository"
)

type DashboardUsecase struct {
	dashboard repo.DashboardRepository
}

// DI
func NewDashboardUsecase(dashboard repo.DashboardRepository) *DashboardUsecase {
	return &DashboardUsecase{dashboard: dashboard}
}

func (u *DashboardUsecase) Stats(ctx context.Context) (repo.DashboardStats, error) {
	return u.dashboard.Stats(ctx)
}
