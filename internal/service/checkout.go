package service

import (
	"github.com/shopspring/decimal"

	"github.com/example/luxeshop/internal/datamodels/cart"
	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/datamodels/product"
)

// DefaultPaymentMethod 未指定支付方式时默认货到付款
const DefaultPaymentMethod = "COD"

// checkoutLine 一条待结算的购物车行与其商品
type checkoutLine struct {
	Item    *cart.Item
	Product *product.Product
}

// buildPlacement 结算的纯计算部分：校验每行库存、按下单时价格
// 生成订单行快照并累计总额。不修改任何输入；库存扣减由调用方
// 在同一事务内按返回的行数量执行。
func buildPlacement(lines []checkoutLine, userID int64, shippingAddress, paymentMethod string) (*order.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if shippingAddress == "" {
		return nil, ErrBlankAddress
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	total := decimal.Zero
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p := line.Product
		qty := line.Item.Quantity
		if p.Stock < qty {
			return nil, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   qty,
				Available:   p.Stock,
			}
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(qty)))
		items = append(items, order.Item{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.ImageURL,
			Quantity:     qty,
			Price:        p.Price,
		})
	}

	return &order.Order{
		UserID:          userID,
		TotalAmount:     total,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Status:          order.StatusPending,
		Items:           items,
	}, nil
}
