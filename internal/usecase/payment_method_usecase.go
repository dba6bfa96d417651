package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PaymentMethodUsecase struct {
	paymentMethods repo.PaymentMethodRepository
}

// DI
func NewPaymentMethodUsecase(paymentMethods repo.PaymentMethodRepository) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{paymentMethods: paymentMethods}
}

type AddPaymentMethodInput struct {
	Type       string
	CardNumber string
	ExpiryDate string
}

func (u *PaymentMethodUsecase) List(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	if userID <= 0 {
		return []model.PaymentMethod{}, ErrUnauthorized
	}
	return u.paymentMethods.ListByUserID(ctx, userID)
}

func (u *PaymentMethodUsecase) Add(ctx context.Context, userID int64, in AddPaymentMethodInput) (model.PaymentMethod, error) {
	if userID <= 0 {
		return model.PaymentMethod{}, ErrUnauthorized
	}

	cardNumber := strings.ReplaceAll(strings.TrimSpace(in.CardNumber), " ", "")

	fields := FieldErrors{}
	if strings.TrimSpace(in.Type) == "" {
		fields["type"] = "type is required"
	}
	if len(cardNumber) < 4 {
		fields["card_number"] = "card number must be at least 4 digits"
	}
	if strings.TrimSpace(in.ExpiryDate) == "" {
		fields["expiry_date"] = "expiry date is required"
	}
	if len(fields) > 0 {
		return model.PaymentMethod{}, NewValidationError(fields)
	}

	//番号本体は保存しない。下4桁だけ。
	return u.paymentMethods.Create(ctx, model.PaymentMethod{
		UserID:     userID,
		Type:       in.Type,
		LastFour:   cardNumber[len(cardNumber)-4:],
		ExpiryDate: in.ExpiryDate,
	})
}

func (u *PaymentMethodUsecase) Remove(ctx context.Context, userID int64, id int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	err := u.paymentMethods.DeleteOwned(ctx, userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "payment method"}
	}
	return err
}
