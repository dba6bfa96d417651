package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewAdminProductUsecase(productRepo repo.ProductRepository, inventoryRepo repo.InventoryRepository) *AdminProductUsecase {
	return &AdminProductUsecase{productRepo: productRepo, inventoryRepo: inventoryRepo}
}

type CreateProductInput struct {
	Name         string
	Category     string
	Price        float64
	Stock        int64
	Brand        string
	PetType      string
	IsFeatured   bool
	IsBestSeller bool
	Image        string
}

// 部分更新。nilの項目は変更しない。
type UpdateProductInput struct {
	Name         *string
	Category     *string
	Price        *float64
	Stock        *int64
	Brand        *string
	PetType      *string
	IsFeatured   *bool
	IsBestSeller *bool
	Image        *string
}

func (u *AdminProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	fields := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Category) == "" {
		fields["category"] = "category is required"
	}
	if in.Price < 0 {
		fields["price"] = "price must not be negative"
	}
	if in.Stock < 0 {
		fields["stock"] = "stock must not be negative"
	}
	if len(fields) > 0 {
		return model.Product{}, NewValidationError(fields)
	}

	return u.productRepo.Create(ctx, model.Product{
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		Stock:        in.Stock,
		Brand:        in.Brand,
		PetType:      in.PetType,
		IsFeatured:   in.IsFeatured,
		IsBestSeller: in.IsBestSeller,
		Image:        in.Image,
	})
}

func (u *AdminProductUsecase) Update(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewValidationError(FieldErrors{"id": "invalid id"})
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return model.Product{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Product{}, NewValidationError(FieldErrors{"name": "name must not be empty"})
		}
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewValidationError(FieldErrors{"price": "price must not be negative"})
		}
		p.Price = *in.Price
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.PetType != nil {
		p.PetType = *in.PetType
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.IsBestSeller != nil {
		p.IsBestSeller = *in.IsBestSeller
	}
	if in.Image != nil {
		p.Image = *in.Image
	}

	//在庫は注文と同じプリミティブで更新する
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewValidationError(FieldErrors{"stock": "stock must not be negative"})
		}
		if err := u.inventoryRepo.SetStock(ctx, id, *in.Stock); err != nil {
			return model.Product{}, err
		}
		p.Stock = *in.Stock
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidationError(FieldErrors{"id": "invalid id"})
	}

	err := u.productRepo.SoftDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "product"}
	}
	return err
}
