package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
}

// DI
func NewReviewUsecase(reviews repo.ReviewRepository, products repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, products: products}
}

type CreateReviewInput struct {
	ProductID int64
	Rating    int
	Comment   string
}

func (u *ReviewUsecase) Create(ctx context.Context, userID int64, in CreateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, ErrUnauthorized
	}

	fields := FieldErrors{}
	if in.ProductID <= 0 {
		fields["product_id"] = "invalid product id"
	}
	if in.Rating < 1 || in.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		return model.Review{}, NewValidationError(fields)
	}

	//商品の存在確認
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, &NotFoundError{Resource: "product"}
		}
		return model.Review{}, err
	}

	return u.reviews.Create(ctx, model.Review{
		UserID:    userID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewValidationError(FieldErrors{"product_id": "invalid product id"})
	}
	return u.reviews.ListByProductID(ctx, productID)
}
