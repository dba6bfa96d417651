package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RegisterRoutes経由でミドルウェアごと通す結合テスト。
// DBの代わりにインメモリのTxReposを使う。

// =====================
// インメモリのTxManager / repos
// =====================

type fakeStore struct {
	products   map[int64]model.Product
	orders     map[int64]model.Order
	orderItems map[int64][]model.OrderItem
	nextOrder  int64
}

type fakeTxManager struct {
	store *fakeStore
}

func newFakeTxManager() *fakeTxManager {
	return &fakeTxManager{store: &fakeStore{
		products:   map[int64]model.Product{},
		orders:     map[int64]model.Order{},
		orderItems: map[int64][]model.OrderItem{},
		nextOrder:  1,
	}}
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	snapshot := m.snapshot()
	if err := fn(&fakeTxRepos{store: m.store}); err != nil {
		m.store = snapshot
		return err
	}
	return nil
}

func (m *fakeTxManager) snapshot() *fakeStore {
	s := &fakeStore{
		products:   map[int64]model.Product{},
		orders:     map[int64]model.Order{},
		orderItems: map[int64][]model.OrderItem{},
		nextOrder:  m.store.nextOrder,
	}
	for k, v := range m.store.products {
		s.products[k] = v
	}
	for k, v := range m.store.orders {
		s.orders[k] = v
	}
	for k, v := range m.store.orderItems {
		items := make([]model.OrderItem, len(v))
		copy(items, v)
		s.orderItems[k] = items
	}
	return s
}

type fakeTxRepos struct{ store *fakeStore }

func (r *fakeTxRepos) Orders() repo.OrderRepository         { return &fakeOrderRepo{store: r.store} }
func (r *fakeTxRepos) OrderItems() repo.OrderItemRepository { return &fakeOrderItemRepo{store: r.store} }
func (r *fakeTxRepos) Products() repo.ProductRepository     { return &fakeProductRepo{store: r.store} }
func (r *fakeTxRepos) Inventory() repo.InventoryRepository  { return &fakeInventoryRepo{store: r.store} }

type fakeOrderRepo struct{ store *fakeStore }

func (f *fakeOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := f.store.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range f.store.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	order.ID = f.store.nextOrder
	f.store.nextOrder++
	f.store.orders[order.ID] = order
	return order.ID, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	o, ok := f.store.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	f.store.orders[orderID] = o
	return nil
}

func (f *fakeOrderRepo) ListAdmin(ctx context.Context, filter repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	panic("not used in OrderHandler tests")
}

type fakeOrderItemRepo struct{ store *fakeStore }

func (f *fakeOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	for i := range items {
		items[i].OrderID = orderID
	}
	f.store.orderItems[orderID] = append(f.store.orderItems[orderID], items...)
	return nil
}

func (f *fakeOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return f.store.orderItems[orderID], nil
}

type fakeProductRepo struct{ store *fakeStore }

func (f *fakeProductRepo) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductWithRating, int64, error) {
	panic("not used in OrderHandler tests")
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := f.store.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindByIDWithRating(ctx context.Context, id int64) (repo.ProductWithRating, error) {
	panic("not used in OrderHandler tests")
}

func (f *fakeProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in OrderHandler tests")
}

func (f *fakeProductRepo) Update(ctx context.Context, p model.Product) error {
	panic("not used in OrderHandler tests")
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in OrderHandler tests")
}

type fakeInventoryRepo struct{ store *fakeStore }

func (f *fakeInventoryRepo) SetStock(ctx context.Context, productID int64, newStock int64) error {
	panic("not used in OrderHandler tests")
}

func (f *fakeInventoryRepo) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	p, ok := f.store.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	f.store.products[productID] = p
	return true, nil
}

func (f *fakeInventoryRepo) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	panic("not used in OrderHandler tests")
}

// TokenVersionGuard用。FindByIDだけ返す。
type fakeUserRepo struct {
	users map[int64]*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { panic("not used") }
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used")
}
func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error)     { panic("not used") }
func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error { panic("not used") }
func (f *fakeUserRepo) Delete(ctx context.Context, userID int64) error     { panic("not used") }
func (f *fakeUserRepo) IncrementTokenVersion(ctx context.Context, userID int64) error {
	panic("not used")
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	return f.users[userID], nil
}

// =====================
// setup
// =====================

const testSecret = "test_secret"

type orderTestEnv struct {
	e  *echo.Echo
	tx *fakeTxManager
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	tx := newFakeTxManager()
	cfg := config.Config{JWTSecret: testSecret}
	users := &fakeUserRepo{users: map[int64]*model.User{
		10: {ID: 10, Name: "Test Customer", Role: model.RoleUser, TokenVersion: 0},
		20: {ID: 20, Name: "Other Customer", Role: model.RoleUser, TokenVersion: 0},
	}}

	uc := usecase.NewOrderUsecase(tx, validator.NewOrderValidator())
	h := handler.NewOrderHandler(uc)

	e := echo.New()
	h.RegisterRoutes(e, cfg, users)

	return &orderTestEnv{e: e, tx: tx}
}

func (env *orderTestEnv) addProduct(p model.Product) {
	env.tx.store.products[p.ID] = p
}

func (env *orderTestEnv) token(t *testing.T, userID int64) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": "user",
		"tv":   0,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (env *orderTestEnv) do(t *testing.T, method, path, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID > 0 {
		req.Header.Set("Authorization", "Bearer "+env.token(t, userID))
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// =====================
// tests
// =====================

func TestOrderCreate_Success(t *testing.T) {
	env := newOrderTestEnv(t)
	env.addProduct(model.Product{ID: 1, Name: "Whiskas Ocean Fish Flavor", Price: 18.00, Stock: 5})

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":2}],"total_price":36.0,"payment_method":"Visa","shipping_address":"Tokyo"}`, 10)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Message string `json:"message"`
		OrderID int64  `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully", resp.Message)
	assert.NotZero(t, resp.OrderID)

	//在庫 5 → 3
	assert.Equal(t, int64(3), env.tx.store.products[1].Stock)
}

func TestOrderCreate_InsufficientStock(t *testing.T) {
	env := newOrderTestEnv(t)
	env.addProduct(model.Product{ID: 1, Name: "Glass Tank (20 Gallon)", Price: 75.00, Stock: 1})

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":2}],"total_price":150.0,"payment_method":"Visa","shipping_address":"Tokyo"}`, 10)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "out of stock")
	//何も永続化されない
	assert.Empty(t, env.tx.store.orders)
	assert.Equal(t, int64(1), env.tx.store.products[1].Stock)
}

func TestOrderCreate_ValidationError(t *testing.T) {
	env := newOrderTestEnv(t)

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[],"total_price":0,"payment_method":"","shipping_address":""}`, 10)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "items")
	assert.Contains(t, resp.Fields, "payment_method")
}

func TestOrderCreate_RequiresAuth(t *testing.T) {
	env := newOrderTestEnv(t)

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":1}],"total_price":10,"payment_method":"Visa","shipping_address":"Tokyo"}`, 0)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderCancel_Flow(t *testing.T) {
	env := newOrderTestEnv(t)
	env.addProduct(model.Product{ID: 1, Name: "Beef Jerky Treats", Price: 9.99, Stock: 10})

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":1}],"total_price":9.99,"payment_method":"Visa","shipping_address":"Tokyo"}`, 10)
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed struct {
		OrderID int64 `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))

	//他人はキャンセルできない
	rec = env.do(t, http.MethodPost, "/orders/1/cancel", "", 20)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	//本人はキャンセルできる
	rec = env.do(t, http.MethodPost, "/orders/1/cancel", "", 10)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)

	//2回目は弾かれる（pendingではない）
	rec = env.do(t, http.MethodPost, "/orders/1/cancel", "", 10)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderReturn_OnlyDelivered(t *testing.T) {
	env := newOrderTestEnv(t)
	env.addProduct(model.Product{ID: 1, Name: "Beef Jerky Treats", Price: 9.99, Stock: 10})

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":1}],"total_price":9.99,"payment_method":"Visa","shipping_address":"Tokyo"}`, 10)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/orders/1/return", "", 10)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	//配達済みにしてから返品
	o := env.tx.store.orders[1]
	o.Status = model.OrderStatusDelivered
	env.tx.store.orders[1] = o

	rec = env.do(t, http.MethodPost, "/orders/1/return", "", 10)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"returned"`)
}

func TestOrderList_ReturnsOwnOrders(t *testing.T) {
	env := newOrderTestEnv(t)
	env.addProduct(model.Product{ID: 1, Name: "Timothy Hay Bundle", Price: 16.00, Stock: 50})

	rec := env.do(t, http.MethodPost, "/orders",
		`{"items":[{"id":1,"quantity":3}],"total_price":48.0,"payment_method":"Visa","shipping_address":"Tokyo"}`, 10)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/orders", "", 10)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
		Items  []struct {
			ProductID int64   `json:"product_id"`
			Quantity  int64   `json:"quantity"`
			Price     float64 `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 16.00, orders[0].Items[0].Price)

	//他人には見えない
	rec = env.do(t, http.MethodGet, "/orders", "", 20)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
