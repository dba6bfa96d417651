package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	"app/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// デモ用の初期データ投入。何度実行しても重複しない。
func main() {
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

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	if err := seedUsers(gormDB); err != nil {
		log.Fatal("seed users failed", zap.Error(err))
	}
	if err := seedProducts(gormDB); err != nil {
		log.Fatal("seed products failed", zap.Error(err))
	}
	if err := seedPaymentMethods(gormDB); err != nil {
		log.Fatal("seed payment methods failed", zap.Error(err))
	}

	log.Info("seed done")
}

func seedUsers(gormDB *gorm.DB) error {
	users := []struct {
		name     string
		email    string
		password string
		role     model.Role
	}{
		{"Admin", "admin@pawsy.com", "password123", model.RoleAdmin},
		{"Test Customer", "customer@pawsy.com", "password123", model.RoleUser},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
		//既にいれば何もしない
		if err := gormDB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(gormDB *gorm.DB) error {
	products := []model.Product{
		// --- フード ---
		{Name: "Pedigree Adult Beef & Vegetables (1.5kg)", Category: "Food", Price: 20.00, Stock: 50, Brand: "PawBrand", PetType: "Dog", IsFeatured: true, IsBestSeller: true, Image: "https://pngimg.com/uploads/dog_food/dog_food_PNG40.png"},
		{Name: "Whiskas Ocean Fish Flavor", Category: "Food", Price: 18.00, Stock: 40, Brand: "WhiskerCo", PetType: "Cat", IsFeatured: true, IsBestSeller: true, Image: "https://www.whiskas.com.ph/sites/g/files/fnmzdf8166/files/2025-05/whiskas-3d-1-2kg-fop-adult-oceanfish-2_1713962774553.png"},
		{Name: "Goldfish Flakes (50g)", Category: "Food", Price: 8.50, Stock: 60, Brand: "Royal Canin", PetType: "Turtle", IsBestSeller: true, Image: "https://www.apifishcare.com/images/products-us/goldfish-flakes/goldfish-flakes-.36.jpg"},
		{Name: "Aquatic Turtle Pellets", Category: "Food", Price: 14.50, Stock: 55, Brand: "PawBrand", PetType: "Turtle", IsBestSeller: true, Image: "https://mazuri.com/cdn/shop/files/727613010300-center-1.jpg?v=1714169928"},
		{Name: "Timothy Hay Bundle", Category: "Food", Price: 16.00, Stock: 50, Brand: "Jinx", PetType: "Rabbit", IsBestSeller: true, Image: "https://pngimg.com/d/grass_PNG4926.png"},
		{Name: "Tropical Fruit Bird Mix", Category: "Food", Price: 22.00, Stock: 35, Brand: "Royal Canin", PetType: "Parrot", IsFeatured: true, IsBestSeller: true, Image: "https://cdn11.bigcommerce.com/s-bbbdf/images/stencil/original/products/3550/15091/Country-Tropical-Bird-Food-Finch-Seed-Mix-600g-652708__22002.1730110819.jpg?c=2"},
		{Name: "Hamster Pellet Blend (500g)", Category: "Food", Price: 12.00, Stock: 40, Brand: "Jinx", PetType: "Hamster", IsBestSeller: true, Image: "https://pngimg.com/d/sunflower_PNG13374.png"},

		// --- アクセサリー ---
		{Name: "Retractable Dog Leash (5m)", Category: "Accessories", Price: 12.50, Stock: 30, Brand: "PawBrand", PetType: "Dog", IsBestSeller: true, Image: "https://pngimg.com/uploads/leash/leash_PNG39.png"},
		{Name: "Water Filter Pump", Category: "Accessories", Price: 35.00, Stock: 20, Brand: "Jinx", PetType: "Turtle", IsBestSeller: true, Image: "https://pngimg.com/d/engine_PNG38.png"},
		{Name: "Rabbit Water Bottle (500ml)", Category: "Accessories", Price: 8.99, Stock: 40, Brand: "PawBrand", PetType: "Rabbit"},

		// --- 家具 ---
		{Name: "Soft Plush Dog Bed (Large)", Category: "Furniture", Price: 45.00, Stock: 15, Brand: "Jinx", PetType: "Dog", IsFeatured: true, Image: "https://img.lazcdn.com/g/p/20fb5afe4311e50ea819ad1b6702f1a1.jpg_720x720q80.jpg"},
		{Name: "Multi-Level Cat Tree Tower", Category: "Furniture", Price: 85.00, Stock: 10, Brand: "WhiskerCo", PetType: "Cat", IsFeatured: true, Image: "https://www.kazoo.com.au/cdn/shop/files/Kazoo__15603_MultiLevelScandiCatTree-85.jpg?v=1755066065&width=1080"},
		{Name: "Glass Tank (20 Gallon)", Category: "Furniture", Price: 75.00, Stock: 8, Brand: "WhiskerCo", PetType: "Turtle", IsFeatured: true, Image: "https://pngimg.com/uploads/aquarium/aquarium_PNG24.png"},
		{Name: "Wooden Rabbit Hutch", Category: "Furniture", Price: 150.00, Stock: 3, Brand: "WhiskerCo", PetType: "Rabbit", IsFeatured: true, Image: "https://www.outdoorlivinguk.co.uk/media/catalog/product/cache/dc623b31b1284f20d50cd196871d5304/d/e/def2ed48e61cdde0f68f34010f2306e6.jpg"},
		{Name: "Large Metal Bird Cage", Category: "Furniture", Price: 120.00, Stock: 5, Brand: "WhiskerCo", PetType: "Parrot", IsFeatured: true, Image: "https://pngimg.com/d/cage_PNG22.png"},
		{Name: "Cozy Hamster Hideout", Category: "Furniture", Price: 9.99, Stock: 20, Brand: "WhiskerCo", PetType: "Hamster", Image: "https://pngimg.com/d/box_PNG88.png"},

		// --- おもちゃ ---
		{Name: "Interactive Feather Wand", Category: "Toys", Price: 5.99, Stock: 100, Brand: "Royal Canin", PetType: "Cat", IsBestSeller: true},
		{Name: "Wooden Chewing Block", Category: "Toys", Price: 8.50, Stock: 60, Brand: "Jinx", PetType: "Parrot", IsBestSeller: true, Image: "https://images-cdn.ubuy.co.in/633b909354e61a46983c28ea-bird-toys-multi-color-wooden-block.jpg"},
		{Name: "Silent Spinner Wheel", Category: "Toys", Price: 14.50, Stock: 25, Brand: "PawBrand", PetType: "Hamster", IsFeatured: true, Image: "https://pngimg.com/uploads/hamster/hamster_PNG38.png"},

		// --- おやつ ---
		{Name: "Beef Jerky Treats", Category: "Treats", Price: 9.99, Stock: 50, Brand: "PawBrand", PetType: "Dog", IsBestSeller: true, Image: "https://smmarkets.ph/media/catalog/product/2/0/20555784_copy_.png"},
	}

	for _, p := range products {
		//名前で既存チェック
		var count int64
		if err := gormDB.Model(&model.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := gormDB.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPaymentMethods(gormDB *gorm.DB) error {
	cards := map[string][]model.PaymentMethod{
		"admin@pawsy.com": {
			{Type: "Visa", LastFour: "4242", ExpiryDate: "12/28"},
		},
		"customer@pawsy.com": {
			{Type: "Visa", LastFour: "1234", ExpiryDate: "10/27"},
			{Type: "Mastercard", LastFour: "5678", ExpiryDate: "05/26"},
		},
	}

	for email, list := range cards {
		var user model.User
		if err := gormDB.Where("email = ?", email).First(&user).Error; err != nil {
			continue
		}

		var count int64
		if err := gormDB.Model(&model.PaymentMethod{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		for _, card := range list {
			card.UserID = user.ID
			if err := gormDB.Create(&card).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
