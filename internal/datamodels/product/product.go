package product

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/luxeshop/internal/pagination"
)

// Product 商品模型，Active=false 表示已下架（软删除）
type Product struct {
	ID            int64           `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:128;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"original_price"`
	Stock         int64           `gorm:"not null" json:"stock"`
	ImageURL      string          `gorm:"size:255" json:"image_url"`
	Category      string          `gorm:"size:32;index" json:"category"`
	Brand         string          `gorm:"size:64" json:"brand"`
	SKU           string          `gorm:"size:64" json:"sku"`
	Active        bool            `gorm:"index;not null;default:true" json:"active"`
	Rating        float64         `json:"rating"`
	ReviewCount   int64           `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Repository 商品仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListAll(ctx context.Context, req pagination.Request) ([]*Product, int64, error)
	ListActive(ctx context.Context, req pagination.Request) ([]*Product, int64, error)
	ListByCategory(ctx context.Context, category string, req pagination.Request) ([]*Product, int64, error)
	Search(ctx context.Context, keyword string, req pagination.Request) ([]*Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	CountActive(ctx context.Context) (int64, error)
}
