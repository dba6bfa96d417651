package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListPublicProducts_NormalizesPaging(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products)

	//page/limitが不正ならデフォルトに倒す
	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Page == 1 && q.Limit == 20
	})).Return([]repo.ProductWithRating{}, int64(0), nil)

	out, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 1000})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
	products.AssertExpectations(t)
}

func TestListPublicProducts_PassesFilters(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products)

	min := 10.0
	avg := 4.5
	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Q == "leash" && q.Category == "Accessories" && q.PetType == "Dog" &&
			q.MinPrice != nil && *q.MinPrice == 10.0 && q.Sort == "price_asc"
	})).Return([]repo.ProductWithRating{
		{
			Product:          model.Product{ID: 8, Name: "Retractable Dog Leash (5m)", Price: 12.50},
			ReviewsAvgRating: &avg,
			ReviewsCount:     3,
		},
	}, int64(1), nil)

	out, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page:     1,
		Limit:    20,
		Q:        "leash",
		Category: "Accessories",
		PetType:  "Dog",
		MinPrice: &min,
		Sort:     "price_asc",
	})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Total)
	require.NotNil(t, out.Items[0].ReviewsAvgRating)
	assert.Equal(t, 4.5, *out.Items[0].ReviewsAvgRating)
}

func TestGetProductDetail_NotFound(t *testing.T) {
	products := &ProductRepoMock{}
	uc := usecase.NewProductUsecase(products)

	products.On("FindByIDWithRating", mock.Anything, int64(999)).
		Return(repo.ProductWithRating{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 999)

	var notFound *usecase.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
}

func TestGetProductDetail_InvalidID(t *testing.T) {
	uc := usecase.NewProductUsecase(&ProductRepoMock{})

	_, err := uc.GetProductDetail(context.Background(), 0)

	var vErr *usecase.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
