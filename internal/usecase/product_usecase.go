package usecase

import (
	"context"
	"errors"

	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
	PetType  string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

type ProductListOutput struct {
	Items []repo.ProductWithRating `json:"items"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

// 公開商品一覧（レビュー平均・件数付き）
func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        in.Q,
		Category: in.Category,
		PetType:  in.PetType,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, err
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, id int64) (repo.ProductWithRating, error) {
	if id <= 0 {
		return repo.ProductWithRating{}, NewValidationError(FieldErrors{"id": "invalid id"})
	}

	p, err := u.productRepo.FindByIDWithRating(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ProductWithRating{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return repo.ProductWithRating{}, err
	}
	return p, nil
}
