package validator

import (
	"context"
	"regexp"
	"strings"

	"app/internal/usecase"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, name string, email string, password string) error {
	fields := usecase.FieldErrors{}

	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}

	email = strings.TrimSpace(email)
	if email == "" {
		fields["email"] = "email is required"
	} else if !emailRe.MatchString(email) {
		fields["email"] = "email is invalid"
	}

	if len(password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	fields := usecase.FieldErrors{}

	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
