package usecase

import (
	"context"
	"errors"

	repo "app/internal/repository"
)

type WishlistUsecase struct {
	wishlist repo.WishlistRepository
	products repo.ProductRepository
}

// DI
func NewWishlistUsecase(wishlist repo.WishlistRepository, products repo.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlist: wishlist, products: products}
}

type WishlistItemOutput struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int64   `json:"stock"`
}

func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]WishlistItemOutput, error) {
	if userID <= 0 {
		return []WishlistItemOutput{}, ErrUnauthorized
	}

	items, err := u.wishlist.ListByUserID(ctx, userID)
	if err != nil {
		return []WishlistItemOutput{}, err
	}

	outs := make([]WishlistItemOutput, 0, len(items))
	for _, it := range items {
		out := WishlistItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
		}
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

func (u *WishlistUsecase) Add(ctx context.Context, userID int64, productID int64) (WishlistItemOutput, error) {
	if userID <= 0 {
		return WishlistItemOutput{}, ErrUnauthorized
	}
	if productID <= 0 {
		return WishlistItemOutput{}, NewValidationError(FieldErrors{"product_id": "invalid product id"})
	}

	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return WishlistItemOutput{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return WishlistItemOutput{}, err
	}

	item, err := u.wishlist.Add(ctx, userID, productID)
	if err != nil {
		return WishlistItemOutput{}, err
	}

	return WishlistItemOutput{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Stock:     p.Stock,
	}, nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	item, err := u.wishlist.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "wishlist item"}
	}
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return &AuthorizationError{}
	}

	return u.wishlist.Delete(ctx, itemID)
}
