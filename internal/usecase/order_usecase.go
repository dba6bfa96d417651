package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// usecaseがValidatorInterfaceに依存する約束
type OrderValidator interface {
	ValidatePlaceOrder(ctx context.Context, in PlaceOrderInput) error
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	validator OrderValidator
}

func NewOrderUsecase(tx repo.TransactionManager, validator OrderValidator) *OrderUsecase {
	return &OrderUsecase{tx: tx, validator: validator}
}

type OrderLineInput struct {
	ProductID int64 `json:"id"`
	Quantity  int64 `json:"quantity"`
}

type PlaceOrderInput struct {
	Items           []OrderLineInput
	TotalPrice      float64
	PaymentMethod   string
	ShippingAddress string
}

type ProductSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type OrderItemOutput struct {
	ProductID int64          `json:"product_id"`
	Quantity  int64          `json:"quantity"`
	Price     float64        `json:"price"`
	Product   ProductSummary `json:"product"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	Status          string            `json:"status"`
	TotalPrice      float64           `json:"total_price"`
	PaymentMethod   string            `json:"payment_method"`
	ShippingAddress string            `json:"shipping_address"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

type PlaceOrderOutput struct {
	OrderID int64
}

// 注文確定。注文作成・在庫減算・明細作成を1トランザクションで行う。
// 途中で失敗したら全部ロールバック（注文も明細も在庫減算も残らない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, ErrUnauthorized
	}

	//入力検証はトランザクションの外で
	if err := u.validator.ValidatePlaceOrder(ctx, in); err != nil {
		return PlaceOrderOutput{}, err
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文作成（total_priceはクライアント申告値。表示用で、明細価格が正）
		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			Status:          model.OrderStatusPending,
			TotalPrice:      in.TotalPrice,
			PaymentMethod:   in.PaymentMethod,
			ShippingAddress: in.ShippingAddress,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}

		orderItems := make([]model.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			//商品取得
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "product"}
			}
			if err != nil {
				return err
			}

			//在庫減算（条件付きUPDATE。足りないなら false）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{ProductID: p.ID, Name: p.Name}
			}

			//価格はカタログの現在値をスナップショット（クライアント申告の単価は信用しない）
			orderItems = append(orderItems, model.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     p.Price,
				CreatedAt: now,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}

		out = PlaceOrderOutput{OrderID: orderID}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

// 自分の注文履歴（明細＋商品情報付き、新しい順）
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, ErrUnauthorized
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
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
				//商品が消えていてもスナップショットは返せる
				if p, err := r.Products().FindByID(ctx, it.ProductID); err == nil {
					itemOut.Product = ProductSummary{ID: p.ID, Name: p.Name, Image: p.Image}
				}
				itemOuts = append(itemOuts, itemOut)
			}

			outs = append(outs, toOrderOutput(o, itemOuts))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// キャンセル。pendingのみ可。在庫は戻さない。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}

		//所有チェック
		if o.UserID != userID {
			return &AuthorizationError{}
		}

		if o.Status != model.OrderStatusPending {
			return &InvalidStateError{Action: "cancelled", Current: o.Status}
		}

		return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
	})
}

// 返品。deliveredのみ可。
func (u *OrderUsecase) ReturnOrder(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}

		if o.UserID != userID {
			return &AuthorizationError{}
		}

		if o.Status != model.OrderStatusDelivered {
			return &InvalidStateError{Action: "returned", Current: o.Status}
		}

		return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusReturned)
	})
}

func toOrderOutput(o model.Order, items []OrderItemOutput) OrderOutput {
	return OrderOutput{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		TotalPrice:      o.TotalPrice,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}
