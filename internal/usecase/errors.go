package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"app/internal/domain/model"
)

var (
	//401 認証失敗
	ErrUnauthorized = errors.New("unauthorized")
	//409 email重複など
	ErrConflict = errors.New("conflict")
	//500
	ErrInternal = errors.New("internal error")
)

// 項目名 → メッセージ
type FieldErrors map[string]string

// 入力不備。トランザクションに入る前に返す。
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func NewValidationError(fields FieldErrors) error {
	return &ValidationError{Fields: fields}
}

// 参照先が存在しない
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// 在庫不足。注文トランザクション全体を中断する。
type InsufficientStockError struct {
	ProductID int64
	Name      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %q is out of stock", e.Name)
}

// 他人のリソースへの操作
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string {
	return "unauthorized"
}

// 現在のステータスからは遷移できない
type InvalidStateError struct {
	Action  string
	Current model.OrderStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("order cannot be %s, it is currently %s", e.Action, e.Current)
}
