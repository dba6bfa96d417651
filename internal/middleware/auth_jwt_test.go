package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func testCfg() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID int64, role string, tv int) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"tv":   tv,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

// AuthJWTを通した後にcontextの中身を書き出すハンドラで検証
func runAuthJWT(t *testing.T, authz string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := middleware.AuthJWT(testCfg())(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, captured
}

func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims(10, "user", 2))

	rec, c := runAuthJWT(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c)
	assert.Equal(t, int64(10), c.Get(middleware.CtxUserIDKey))
	assert.Equal(t, "user", c.Get(middleware.CtxUserRoleKey))
	assert.Equal(t, 2, c.Get(middleware.CtxTokenVersionKey))
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, c := runAuthJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	token := signToken(t, testSecret, validClaims(10, "user", 0))
	rec, c := runAuthJWT(t, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other_secret", validClaims(10, "user", 0))
	rec, c := runAuthJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := validClaims(10, "user", 0)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	rec, c := runAuthJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c)
}

func TestAuthJWT_MissingClaims(t *testing.T) {
	cases := []struct {
		name  string
		strip string
	}{
		{"subなし", "sub"},
		{"roleなし", "role"},
		{"tvなし", "tv"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := validClaims(10, "user", 0)
			delete(claims, tc.strip)
			token := signToken(t, testSecret, claims)

			rec, c := runAuthJWT(t, "Bearer "+token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, c)
		})
	}
}

// =====================
// TokenVersionGuard
// =====================

// FindByIDだけ使う簡易スタブ
type stubUserRepo struct {
	user *model.User
	err  error
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error  { panic("not used") }
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used")
}
func (s *stubUserRepo) List(ctx context.Context) ([]model.User, error)     { panic("not used") }
func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error { panic("not used") }
func (s *stubUserRepo) Delete(ctx context.Context, userID int64) error     { panic("not used") }
func (s *stubUserRepo) IncrementTokenVersion(ctx context.Context, userID int64) error {
	panic("not used")
}

func (s *stubUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.user, s.err
}

func runTokenVersionGuard(t *testing.T, repo *stubUserRepo, userID interface{}, tv interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(middleware.CtxUserIDKey, userID)
	}
	if tv != nil {
		c.Set(middleware.CtxTokenVersionKey, tv)
	}

	h := middleware.TokenVersionGuard(repo)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestTokenVersionGuard_Match(t *testing.T) {
	repo := &stubUserRepo{user: &model.User{ID: 10, TokenVersion: 3}}
	rec := runTokenVersionGuard(t, repo, int64(10), 3)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenVersionGuard_StaleToken(t *testing.T) {
	//ログアウト済み（DB側が進んでいる）
	repo := &stubUserRepo{user: &model.User{ID: 10, TokenVersion: 4}}
	rec := runTokenVersionGuard(t, repo, int64(10), 3)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenVersionGuard_UnknownUser(t *testing.T) {
	repo := &stubUserRepo{user: nil}
	rec := runTokenVersionGuard(t, repo, int64(10), 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenVersionGuard_MissingContext(t *testing.T) {
	repo := &stubUserRepo{user: &model.User{ID: 10}}
	rec := runTokenVersionGuard(t, repo, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// =====================
// AdminRoleGuard
// =====================

func runAdminRoleGuard(t *testing.T, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(middleware.CtxUserRoleKey, role)
	}

	h := middleware.AdminRoleGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestAdminRoleGuard_Admin(t *testing.T) {
	rec := runAdminRoleGuard(t, "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoleGuard_User(t *testing.T) {
	rec := runAdminRoleGuard(t, "user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_MissingRole(t *testing.T) {
	rec := runAdminRoleGuard(t, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
