package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/luxeshop/internal/pagination"
)

// Order 订单聚合根，Items 随订单一次性创建后不再变更；
// 只有 Status 与 TrackingNumber 允许后续更新。
type Order struct {
	ID              int64           `gorm:"primaryKey" json:"id"`
	UserID          int64           `gorm:"index;not null" json:"user_id"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddress string          `gorm:"size:255;not null" json:"shipping_address"`
	PaymentMethod   string          `gorm:"size:32;not null" json:"payment_method"`
	Status          Status          `gorm:"type:varchar(20);index;not null" json:"status"`
	TrackingNumber  string          `gorm:"size:64" json:"tracking_number"`
	Items           []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Item 订单行，下单时对商品信息的快照；之后商品改价不影响历史订单
type Item struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	OrderID      int64           `gorm:"index;not null" json:"order_id"`
	ProductID    int64           `gorm:"index;not null" json:"product_id"`
	ProductName  string          `gorm:"size:128;not null" json:"product_name"`
	ProductImage string          `gorm:"size:255" json:"product_image"`
	Quantity     int64           `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Repository 订单仓储接口
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64, req pagination.Request) ([]*Order, int64, error)
	ListAll(ctx context.Context, req pagination.Request) ([]*Order, int64, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}
