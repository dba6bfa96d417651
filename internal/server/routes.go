package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlersはルーティング対象のハンドラ一式
type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	AdminProduct  *handler.AdminProductHandler
	Order         *handler.OrderHandler
	AdminOrder    *handler.AdminOrderHandler
	Cart          *handler.CartHandler
	Wishlist      *handler.WishlistHandler
	Review        *handler.ReviewHandler
	PaymentMethod *handler.PaymentMethodHandler
	User          *handler.UserHandler
	Contact       *handler.ContactHandler
	Dashboard     *handler.DashboardHandler

	//認証ミドルウェアがトークンバージョン照合に使う
	UserRepo repository.UserRepository
}

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg, h.UserRepo)
	h.Product.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e, cfg, h.UserRepo)
	h.Order.RegisterRoutes(e, cfg, h.UserRepo)
	h.AdminOrder.RegisterRoutes(e, cfg, h.UserRepo)
	h.Cart.RegisterRoutes(e, cfg, h.UserRepo)
	h.Wishlist.RegisterRoutes(e, cfg, h.UserRepo)
	h.Review.RegisterRoutes(e, cfg, h.UserRepo)
	h.PaymentMethod.RegisterRoutes(e, cfg, h.UserRepo)
	h.User.RegisterRoutes(e, cfg, h.UserRepo)
	h.Contact.RegisterRoutes(e, cfg, h.UserRepo)
	h.Dashboard.RegisterRoutes(e, cfg, h.UserRepo)
}
