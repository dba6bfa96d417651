package repository

import "context"

// 管理ダッシュボードの集計値
type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSales    float64 `json:"total_sales"` //cancelledは除外
}

type DashboardRepository interface {
	Stats(ctx context.Context) (DashboardStats, error)
}
