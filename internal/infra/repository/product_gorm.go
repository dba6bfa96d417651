package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// レビュー集計をLEFT JOINで一緒に取る
func (r *ProductGormRepository) baseWithRating(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("products.*, AVG(reviews.rating) AS reviews_avg_rating, COUNT(reviews.id) AS reviews_count").
		Joins("LEFT JOIN reviews ON reviews.product_id = products.id").
		Group("products.id")
}

func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductWithRating, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	count := r.db.WithContext(ctx).Model(&model.Product{})
	query := r.baseWithRating(ctx)

	applyFilter := func(db *gorm.DB) *gorm.DB {
		if q.Q != "" {
			db = db.Where("products.name ILIKE ?", "%"+q.Q+"%")
		}
		if q.Category != "" {
			db = db.Where("products.category = ?", q.Category)
		}
		if q.PetType != "" {
			db = db.Where("products.pet_type = ?", q.PetType)
		}
		if q.MinPrice != nil {
			db = db.Where("products.price >= ?", *q.MinPrice)
		}
		if q.MaxPrice != nil {
			db = db.Where("products.price <= ?", *q.MaxPrice)
		}
		return db
	}
	count = applyFilter(count)
	query = applyFilter(query)

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return []repo.ProductWithRating{}, 0, err
	}

	order := "products.id desc"
	switch q.Sort {
	case "price_asc":
		order = "products.price asc"
	case "price_desc":
		order = "products.price desc"
	}

	var items []repo.ProductWithRating
	offset := (q.Page - 1) * q.Limit
	if err := query.Order(order).Limit(q.Limit).Offset(offset).Scan(&items).Error; err != nil {
		return []repo.ProductWithRating{}, 0, err
	}

	return items, total, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindByIDWithRating(ctx context.Context, id int64) (repo.ProductWithRating, error) {
	var p repo.ProductWithRating
	res := r.baseWithRating(ctx).Where("products.id = ?", id).Scan(&p)
	if res.Error != nil {
		return repo.ProductWithRating{}, res.Error
	}
	if res.RowsAffected == 0 || p.ID == 0 {
		return repo.ProductWithRating{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Save(&p)
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
