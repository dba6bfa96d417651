package repository

import (
	"context"

	"app/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	FindByID(ctx context.Context, itemID int64) (model.WishlistItem, error)
	// 既に入っていればそのまま返す
	Add(ctx context.Context, userID int64, productID int64) (model.WishlistItem, error)
	Delete(ctx context.Context, itemID int64) error
}
