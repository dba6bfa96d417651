package repository

import (
	"context"

	"app/internal/domain/model"
)

type PaymentMethodRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.PaymentMethod, error)
	Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error)
	// user_idも条件に入れて他人のカードを消せないようにする
	DeleteOwned(ctx context.Context, userID int64, id int64) error
}
