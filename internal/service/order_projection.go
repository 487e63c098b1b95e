package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/luxeshop/internal/datamodels/order"
)

// OrderItemResponse 订单行对外视图
type OrderItemResponse struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// OrderResponse 订单对外视图，金额保持 decimal 精度
type OrderResponse struct {
	ID              int64               `json:"id"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	TrackingNumber  string              `json:"tracking_number"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

// ProjectOrder 持久化订单 -> 对外视图的纯映射
func ProjectOrder(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	return &OrderResponse{
		ID:              o.ID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		TrackingNumber:  o.TrackingNumber,
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}

func projectOrders(list []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ProjectOrder(o))
	}
	return out
}

// newTrackingNumber 首次发货时生成运单号
func newTrackingNumber() string {
	return "LX-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
