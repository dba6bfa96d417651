package usecase

import (
	"context"
	"errors"

	repo "app/internal/repository"
)

type CartUsecase struct {
	carts    repo.CartRepository
	products repo.ProductRepository
}

// DI
func NewCartUsecase(carts repo.CartRepository, products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, products: products}
}

type CartItemOutput struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int64   `json:"stock"`
}

func (u *CartUsecase) List(ctx context.Context, userID int64) ([]CartItemOutput, error) {
	if userID <= 0 {
		return []CartItemOutput{}, ErrUnauthorized
	}

	items, err := u.carts.ListByUserID(ctx, userID)
	if err != nil {
		return []CartItemOutput{}, err
	}

	outs := make([]CartItemOutput, 0, len(items))
	for _, it := range items {
		out := CartItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		//カート表示はカタログの現在値
		if p, err := u.products.FindByID(ctx, it.ProductID); err == nil {
			out.Name = p.Name
			out.Price = p.Price
			out.Image = p.Image
			out.Stock = p.Stock
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func (u *CartUsecase) Add(ctx context.Context, userID int64, productID int64, qty int64) (CartItemOutput, error) {
	if userID <= 0 {
		return CartItemOutput{}, ErrUnauthorized
	}
	fields := FieldErrors{}
	if productID <= 0 {
		fields["id"] = "invalid product id"
	}
	if qty < 1 {
		fields["quantity"] = "quantity must be a positive integer"
	}
	if len(fields) > 0 {
		return CartItemOutput{}, NewValidationError(fields)
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemOutput{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return CartItemOutput{}, err
	}

	item, err := u.carts.AddOrIncrement(ctx, userID, productID, qty)
	if err != nil {
		return CartItemOutput{}, err
	}

	return CartItemOutput{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Stock:     p.Stock,
	}, nil
}

func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID int64, itemID int64, qty int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	if qty < 1 {
		return NewValidationError(FieldErrors{"quantity": "quantity must be a positive integer"})
	}

	item, err := u.carts.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "cart item"}
	}
	if err != nil {
		return err
	}

	//所有チェック
	if item.UserID != userID {
		return &AuthorizationError{}
	}

	return u.carts.UpdateQuantity(ctx, itemID, qty)
}

func (u *CartUsecase) Remove(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	item, err := u.carts.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "cart item"}
	}
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return &AuthorizationError{}
	}

	return u.carts.Delete(ctx, itemID)
}

func (u *CartUsecase) Clear(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	return u.carts.ClearByUserID(ctx, userID)
}

func (u *CartUsecase) Count(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, ErrUnauthorized
	}
	return u.carts.CountByUserID(ctx, userID)
}
