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

// =====================
// UserRepository mock
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// helpers
// =====================

func seedOrder(t *testing.T, tx *memTxManager, o model.Order) int64 {
	t.Helper()
	var id int64
	require.NoError(t, tx.WithinTx(context.Background(), func(r repo.TxRepos) error {
		var err error
		id, err = r.Orders().Create(context.Background(), o)
		return err
	}))
	return id
}

// =====================
// UpdateStatus
// =====================

func TestAdminUpdateStatus_SetsAnySettableStatus(t *testing.T) {
	//オペレーター訂正用なので遷移の制限はない
	cases := []struct {
		from model.OrderStatus
		to   string
	}{
		{model.OrderStatusPending, "processing"},
		{model.OrderStatusProcessing, "shipped"},
		{model.OrderStatusShipped, "delivered"},
		{model.OrderStatusDelivered, "pending"},
		{model.OrderStatusCancelled, "processing"},
		{model.OrderStatusShipped, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"→"+tc.to, func(t *testing.T) {
			tx := newMemTxManager()
			users := &UserRepoMock{}
			uc := usecase.NewAdminOrderUsecase(tx, users)

			orderID := seedOrder(t, tx, model.Order{UserID: 10, Status: tc.from, TotalPrice: 20})

			out, err := uc.UpdateStatus(context.Background(), orderID, usecase.AdminUpdateOrderStatusInput{Status: tc.to})
			require.NoError(t, err)
			assert.Equal(t, tc.to, out.Status)

			o, _ := tx.order(orderID)
			assert.Equal(t, model.OrderStatus(tc.to), o.Status)
		})
	}
}

func TestAdminUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	tx := newMemTxManager()
	uc := usecase.NewAdminOrderUsecase(tx, &UserRepoMock{})

	orderID := seedOrder(t, tx, model.Order{UserID: 10, Status: model.OrderStatusPending})

	for _, s := range []string{"", "unknown", "returned", "PENDING"} {
		_, err := uc.UpdateStatus(context.Background(), orderID, usecase.AdminUpdateOrderStatusInput{Status: s})

		var vErr *usecase.ValidationError
		require.ErrorAs(t, err, &vErr, "status=%q", s)
		assert.Contains(t, vErr.Fields, "status")
	}

	//弾かれた場合はステータスは変わらない
	o, _ := tx.order(orderID)
	assert.Equal(t, model.OrderStatusPending, o.Status)
}

func TestAdminUpdateStatus_UnknownOrder(t *testing.T) {
	tx := newMemTxManager()
	uc := usecase.NewAdminOrderUsecase(tx, &UserRepoMock{})

	_, err := uc.UpdateStatus(context.Background(), 12345, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})

	var notFound *usecase.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.Resource)
}

// =====================
// List
// =====================

func TestAdminList_AttachesUserSummary(t *testing.T) {
	tx := newMemTxManager()
	users := &UserRepoMock{}
	uc := usecase.NewAdminOrderUsecase(tx, users)

	orderID := seedOrder(t, tx, model.Order{UserID: 10, Status: model.OrderStatusPending, TotalPrice: 36})

	users.On("FindByID", mock.Anything, int64(10)).
		Return(&model.User{ID: 10, Name: "Test Customer", Email: "customer@pawsy.com"}, nil)

	outs, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	assert.Equal(t, orderID, outs[0].ID)
	assert.Equal(t, "Test Customer", outs[0].User.Name)
	assert.Equal(t, "customer@pawsy.com", outs[0].User.Email)
	users.AssertExpectations(t)
}

func TestAdminList_PageAndLimitValidation(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(newMemTxManager(), &UserRepoMock{})

	cases := []struct {
		name  string
		f     repo.AdminOrderListFilter
		field string
	}{
		{"pageゼロ", repo.AdminOrderListFilter{Page: 0, Limit: 20}, "page"},
		{"limitゼロ", repo.AdminOrderListFilter{Page: 1, Limit: 0}, "limit"},
		{"limit超過", repo.AdminOrderListFilter{Page: 1, Limit: 101}, "limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.List(context.Background(), tc.f)

			var vErr *usecase.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}
