package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category string
	PetType  string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

// レビュー集計付きの商品
type ProductWithRating struct {
	model.Product
	ReviewsAvgRating *float64 `json:"reviews_avg_rating"`
	ReviewsCount     int64    `json:"reviews_count"`
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]ProductWithRating, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByIDWithRating(ctx context.Context, id int64) (ProductWithRating, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
