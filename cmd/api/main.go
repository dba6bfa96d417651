package main

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"
	"app/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	paymentMethodRepo := infraRepo.NewPaymentMethodGormRepository(gormDB)
	contactRepo := infraRepo.NewContactMessageGormRepository(gormDB)
	dashboardRepo := infraRepo.NewDashboardGormRepository(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator())
	productUC := usecase.NewProductUsecase(productRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, inventoryRepo)
	orderUC := usecase.NewOrderUsecase(txManager, validator.NewOrderValidator())
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, userRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	paymentMethodUC := usecase.NewPaymentMethodUsecase(paymentMethodRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	contactUC := usecase.NewContactUsecase(contactRepo)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Product:       handler.NewProductHandler(productUC),
		AdminProduct:  handler.NewAdminProductHandler(adminProductUC),
		Order:         handler.NewOrderHandler(orderUC),
		AdminOrder:    handler.NewAdminOrderHandler(adminOrderUC),
		Cart:          handler.NewCartHandler(cartUC),
		Wishlist:      handler.NewWishlistHandler(wishlistUC),
		Review:        handler.NewReviewHandler(reviewUC),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodUC),
		User:          handler.NewUserHandler(userUC),
		Contact:       handler.NewContactHandler(contactUC),
		Dashboard:     handler.NewDashboardHandler(dashboardUC),
		UserRepo:      userRepo,
	}

	//Server起動
	srv := server.New(cfg, log, handlers)
	log.Info("server starting", zap.String("port", cfg.Port))
	if err := srv.Start(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
