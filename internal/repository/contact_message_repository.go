package repository

import (
	"context"

	"app/internal/domain/model"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	//新しい順
	List(ctx context.Context) ([]model.ContactMessage, error)
}
