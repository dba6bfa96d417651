package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// email重複などの一意制約違反を統一
var ErrDuplicate = errors.New("duplicate")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければ(nil, nil)。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//全ユーザー（新しい順）
	List(ctx context.Context) ([]model.User, error)
	// ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID int64) error
	//トークンのバージョンを＋１（強制ログアウト）
	IncrementTokenVersion(ctx context.Context, userID int64) error
}
