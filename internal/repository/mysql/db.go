package mysql

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/cart"
	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/datamodels/user"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Init 初始化全局 GORM 实例并自动迁移表结构
func Init(cfg *config.MySQLConfig) *gorm.DB {
	once.Do(func() {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			zap.L().Fatal("failed to connect mysql", zap.Error(err))
		}
		if err := db.AutoMigrate(
			&user.User{},
			&product.Product{},
			&cart.Item{},
			&order.Order{},
			&order.Item{},
		); err != nil {
			zap.L().Fatal("failed to migrate schema", zap.Error(err))
		}
	})
	return db
}

// DB 获取全局实例
func DB() *gorm.DB {
	return db
}
