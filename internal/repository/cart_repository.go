package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, itemID int64) (model.CartItem, error)
	// 同じ商品が既にあれば数量を加算、無ければ作成
	AddOrIncrement(ctx context.Context, userID int64, productID int64, qty int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID int64, qty int64) error
	Delete(ctx context.Context, itemID int64) error
	ClearByUserID(ctx context.Context, userID int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
