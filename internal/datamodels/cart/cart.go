package cart

import (
	"context"
	"time"
)

// Item 购物车条目，每个用户对同一商品只保留一行
type Item struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"uniqueIndex:uk_cart_user_product;not null" json:"user_id"`
	ProductID int64     `gorm:"uniqueIndex:uk_cart_user_product;not null" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository 购物车仓储接口
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	GetByUserAndProduct(ctx context.Context, userID, productID int64) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
