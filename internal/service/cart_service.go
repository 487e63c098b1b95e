package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/cart"
	"github.com/example/luxeshop/internal/datamodels/product"
)

// CartService 购物车读写；真正的结算发生在 OrderService
type CartService struct {
	cartRepo    cart.Repository
	productRepo product.Repository
}

func NewCartService(cartRepo cart.Repository, productRepo product.Repository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// CartLineView 购物车条目视图，价格取当前商品价
type CartLineView struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartView 整车视图
type CartView struct {
	Items     []CartLineView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int64           `json:"item_count"`
}

// GetCart 读取用户购物车并计算小计 / 总计
func (s *CartService) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, items)
}

func (s *CartService) buildView(ctx context.Context, items []*cart.Item) (*CartView, error) {
	view := &CartView{
		Items: make([]CartLineView, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		p, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 商品已被物理删除的脏数据，跳过展示
				continue
			}
			return nil, err
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(item.Quantity))
		view.Items = append(view.Items, CartLineView{
			ID:           item.ID,
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.ImageURL,
			Price:        p.Price,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
		})
		view.Total = view.Total.Add(subtotal)
		view.ItemCount += item.Quantity
	}
	return view, nil
}

// AddItem 加入购物车；同一商品已存在时合并数量
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int64) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	switch {
	case err == nil:
		existing.Quantity += quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &cart.Item{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// UpdateItem 修改数量，数量归零等价于删除
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID, quantity int64) (*CartView, error) {
	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	if quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := s.cartRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem 删除单个条目
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int64) (*CartView, error) {
	return s.UpdateItem(ctx, userID, itemID, 0)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.cartRepo.DeleteByUser(ctx, userID)
}
