package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ContactUsecase struct {
	messages repo.ContactMessageRepository
}

// DI
func NewContactUsecase(messages repo.ContactMessageRepository) *ContactUsecase {
	return &ContactUsecase{messages: messages}
}

type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// 問い合わせフォーム（公開）
func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) (model.ContactMessage, error) {
	fields := FieldErrors{}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["first_name"] = "first name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["last_name"] = "last name is required"
	}
	if !strings.Contains(in.Email, "@") {
		fields["email"] = "email is invalid"
	}
	if strings.TrimSpace(in.Message) == "" {
		fields["message"] = "message is required"
	}
	if len(fields) > 0 {
		return model.ContactMessage{}, NewValidationError(fields)
	}

	return u.messages.Create(ctx, model.ContactMessage{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Message:   in.Message,
	})
}

// 管理者向け一覧（新しい順）
func (u *ContactUsecase) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return u.messages.List(ctx)
}
