package validator_test

import (
	"context"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	v := validator.NewAuthValidator()

	cases := []struct {
		name     string
		inName   string
		email    string
		password string
		field    string //空文字ならエラーなし
	}{
		{"正常", "Taro", "taro@example.com", "password123", ""},
		{"名前なし", "", "taro@example.com", "password123", "name"},
		{"emailなし", "Taro", "", "password123", "email"},
		{"email形式不正", "Taro", "taro@example", "password123", "email"},
		{"email空白混じり", "Taro", "taro @example.com", "password123", "email"},
		{"パスワード5文字", "Taro", "taro@example.com", "12345", "password"},
		{"パスワード6文字ちょうど", "Taro", "taro@example.com", "123456", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateRegister(context.Background(), tc.inName, tc.email, tc.password)

			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *usecase.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateLogin(context.Background(), "taro@example.com", "password123"))

	err := v.ValidateLogin(context.Background(), "", "")
	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
}
