package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
}

func NewAdminOrderUsecase(tx repo.TransactionManager, users repo.UserRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, users: users}
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminOrderOutput struct {
	OrderOutput
	User UserSummary `json:"user"`
}

// 注文一覧（ユーザー情報付き）
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) ([]AdminOrderOutput, error) {
	// page/limitの最低限チェック
	if f.Page < 1 {
		return []AdminOrderOutput{}, NewValidationError(FieldErrors{"page": "invalid page"})
	}
	if f.Limit < 1 || f.Limit > 100 {
		return []AdminOrderOutput{}, NewValidationError(FieldErrors{"limit": "invalid limit"})
	}

	var outs []AdminOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return err
		}

		outs = make([]AdminOrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}

			itemOuts := make([]OrderItemOutput, 0, len(items))
			for _, it := range items {
				itemOut := OrderItemOutput{
					ProductID: it.ProductID,
					Quantity:  it.Quantity,
					Price:     it.Price,
				}
				if p, err := r.Products().FindByID(ctx, it.ProductID); err == nil {
					itemOut.Product = ProductSummary{ID: p.ID, Name: p.Name, Image: p.Image}
				}
				itemOuts = append(itemOuts, itemOut)
			}

			out := AdminOrderOutput{OrderOutput: toOrderOutput(o, itemOuts)}
			if user, err := u.users.FindByID(ctx, o.UserID); err == nil && user != nil {
				out.User = UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
			}
			outs = append(outs, out)
		}
		return nil
	})

	if err != nil {
		return []AdminOrderOutput{}, err
	}
	return outs, nil
}

// ステータス更新（管理者）。
// オペレーター訂正用なので遷移の制限はかけない。どのステータスからでも設定できる。
// 在庫や明細スナップショットには一切触らない。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, in AdminUpdateOrderStatusInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError(FieldErrors{"id": "invalid id"})
	}

	newStatus := strings.TrimSpace(in.Status)
	if !model.IsSettableStatus(newStatus) {
		return OrderOutput{}, NewValidationError(FieldErrors{"status": "invalid status"})
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(newStatus)); err != nil {
			return err
		}

		o.Status = model.OrderStatus(newStatus)
		out = toOrderOutput(o, nil)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}
