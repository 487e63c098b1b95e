package main

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/datamodels/user"
	"github.com/example/luxeshop/internal/logger"
	"github.com/example/luxeshop/internal/repository/mysql"
	"github.com/example/luxeshop/internal/service"
)

// 初始化数据：默认管理员 + 示例商品目录。
// 幂等：已有数据时跳过。
func main() {
	logger.Init()

	cfg, err := config.Load("./config")
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}

	db := mysql.Init(&cfg.MySQL)
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	ctx := context.Background()

	// 默认管理员
	count, err := userRepo.Count(ctx)
	if err != nil {
		zap.L().Fatal("failed to count users", zap.Error(err))
	}
	if count == 0 {
		admin := &user.User{
			Email:    "admin@luxe.com",
			Salt:     service.NewSalt(),
			FullName: "Admin",
			Role:     user.RoleAdmin,
			Enabled:  true,
		}
		admin.Password = service.HashPassword("Admin@123", admin.Salt)
		if err := userRepo.Create(ctx, admin); err != nil {
			zap.L().Fatal("failed to create admin", zap.Error(err))
		}
		zap.L().Info("default admin created", zap.String("email", admin.Email))
	}

	// 示例商品
	active, err := productRepo.CountActive(ctx)
	if err != nil {
		zap.L().Fatal("failed to count products", zap.Error(err))
	}
	if active > 0 {
		zap.L().Info("catalog already seeded, skipping")
		return
	}

	samples := []*product.Product{
		{Name: "Classic Leather Jacket", Category: "men", Brand: "Luxe", SKU: "LX-M-001",
			Price: decimal.RequireFromString("299.90"), OriginalPrice: decimal.RequireFromString("349.90"),
			Stock: 50, ImageURL: "/assets/img/shop/1/product_1.jpg",
			Description: "Full-grain leather, satin lining."},
		{Name: "Slim Fit Oxford Shirt", Category: "men", Brand: "Luxe", SKU: "LX-M-002",
			Price: decimal.RequireFromString("59.90"), Stock: 200, ImageURL: "/assets/img/shop/2/product_2.jpg"},
		{Name: "Wool Blend Overcoat", Category: "men", Brand: "Luxe", SKU: "LX-M-003",
			Price: decimal.RequireFromString("189.00"), Stock: 80, ImageURL: "/assets/img/shop/3/product_3.jpg"},
		{Name: "Silk Evening Dress", Category: "women", Brand: "Luxe", SKU: "LX-W-001",
			Price: decimal.RequireFromString("249.50"), Stock: 60, ImageURL: "/assets/img/shop/4/product_4.jpg"},
		{Name: "Cashmere Sweater", Category: "women", Brand: "Luxe", SKU: "LX-W-002",
			Price: decimal.RequireFromString("129.90"), Stock: 120, ImageURL: "/assets/img/shop/5/product_5.jpg"},
		{Name: "Pleated Midi Skirt", Category: "women", Brand: "Luxe", SKU: "LX-W-003",
			Price: decimal.RequireFromString("79.90"), Stock: 150, ImageURL: "/assets/img/shop/6/item_lg_1.jpg"},
		{Name: "Leather Tote Bag", Category: "accessories", Brand: "Luxe", SKU: "LX-A-001",
			Price: decimal.RequireFromString("159.00"), Stock: 90, ImageURL: "/assets/img/shop/7/product_7.jpg"},
		{Name: "Gold Plated Watch", Category: "accessories", Brand: "Luxe", SKU: "LX-A-002",
			Price: decimal.RequireFromString("399.00"), Stock: 30, ImageURL: "/assets/img/shop/8/product_8.jpg"},
		{Name: "Silk Scarf", Category: "accessories", Brand: "Luxe", SKU: "LX-A-003",
			Price: decimal.RequireFromString("45.50"), Stock: 300, ImageURL: "/assets/img/shop/9/product_9.jpg"},
	}
	for _, p := range samples {
		p.Active = true
		if err := productRepo.Create(ctx, p); err != nil {
			zap.L().Fatal("failed to seed product", zap.String("name", p.Name), zap.Error(err))
		}
	}
	zap.L().Info("catalog seeded", zap.Int("products", len(samples)))
}
