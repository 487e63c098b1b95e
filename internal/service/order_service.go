package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/luxeshop/internal/datamodels/cart"
	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/datamodels/user"
	"github.com/example/luxeshop/internal/pagination"
)

// OrderService 订单工作流：下单（校验库存、扣减、生成快照、清空购物车）、
// 状态流转（取消时回补库存）以及查询。
// 写路径直接走 db 事务并对商品行加锁，查询走仓储接口。
type OrderService struct {
	db        *gorm.DB
	orderRepo order.Repository
	userRepo  user.Repository
	notifier  *OrderNotifier
	monitor   *Monitor
}

// NewOrderService 创建订单服务；notifier 可为 nil（不发事件）
func NewOrderService(db *gorm.DB, orderRepo order.Repository, userRepo user.Repository, notifier *OrderNotifier) *OrderService {
	return &OrderService{
		db:        db,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		monitor:   GetMonitor(),
	}
}

// PlaceOrder 下单。整个流程在一个事务内完成：
//  1. 读取用户购物车
//  2. 对涉及的商品行加 FOR UPDATE 锁
//  3. 逐行校验库存并扣减，累计总额（decimal，不经过浮点）
//  4. 创建订单及订单行快照
//  5. 清空购物车
//
// 任一步失败整体回滚，不会留下部分扣减。
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, shippingAddress, paymentMethod string) (*OrderResponse, error) {
	s.monitor.RecordOrderRequest()

	var placed *order.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) 购物车行，按加入顺序
		var cartItems []*cart.Item
		if err := tx.Where("user_id = ?", userID).
			Order("id ASC").
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// 2) 锁定全部涉及商品
		ids := make([]int64, 0, len(cartItems))
		for _, item := range cartItems {
			ids = append(ids, item.ProductID)
		}
		var products []*product.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", ids).
			Find(&products).Error; err != nil {
			return err
		}
		byID := make(map[int64]*product.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		lines := make([]checkoutLine, 0, len(cartItems))
		for _, item := range cartItems {
			p, ok := byID[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: id=%d", ErrProductNotFound, item.ProductID)
			}
			lines = append(lines, checkoutLine{Item: item, Product: p})
		}

		// 3) 校验 + 生成订单聚合
		o, err := buildPlacement(lines, userID, shippingAddress, paymentMethod)
		if err != nil {
			return err
		}

		// 4) 扣减库存
		for _, line := range lines {
			line.Product.Stock -= line.Item.Quantity
			if err := tx.Save(line.Product).Error; err != nil {
				return err
			}
		}

		// 5) 订单与订单行作为一个聚合一次写入
		if err := tx.Create(o).Error; err != nil {
			return err
		}

		// 6) 清空购物车
		if err := tx.Where("user_id = ?", userID).
			Delete(&cart.Item{}).Error; err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		switch {
		case IsInsufficientStock(err):
			s.monitor.RecordStockConflict()
		case !isBusinessError(err):
			s.monitor.RecordDBError()
		}
		return nil, err
	}

	s.monitor.RecordOrderPlaced()
	if s.notifier != nil {
		// 事件发送失败不影响已提交的订单
		if err := s.notifier.OrderPlaced(ctx, placed); err != nil {
			s.monitor.RecordMQError()
			zap.L().Warn("failed to publish order placed event",
				zap.Int64("order_id", placed.ID), zap.Error(err))
		}
	}
	return ProjectOrder(placed), nil
}

// UpdateOrderStatus 后台修改订单状态。
// 进入 CANCELLED 时把订单行数量加回商品库存（与下单扣减互逆）；
// 对已取消订单重复取消不再回补。其余流转无副作用，也不做
// 顺序校验（保持宽松语义）。
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, statusStr string) (*OrderResponse, error) {
	next, ok := order.ParseStatus(statusStr)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var updated *order.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o order.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.RestockOnTransition(o.Status, next) {
			for i := range o.Items {
				item := &o.Items[i]
				var p product.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&p, item.ProductID).Error; err != nil {
					// 商品被物理删除时跳过回补，不阻塞取消
					if errors.Is(err, gorm.ErrRecordNotFound) {
						continue
					}
					return err
				}
				p.Stock += item.Quantity
				if err := tx.Save(&p).Error; err != nil {
					return err
				}
			}
		}

		o.Status = next
		if next == order.StatusShipped && o.TrackingNumber == "" {
			o.TrackingNumber = newTrackingNumber()
		}
		if err := tx.Save(&o).Error; err != nil {
			return err
		}
		updated = &o
		return nil
	})
	if err != nil {
		if !isBusinessError(err) {
			s.monitor.RecordDBError()
		}
		return nil, err
	}

	if next == order.StatusCancelled {
		s.monitor.RecordOrderCancelled()
	}
	return ProjectOrder(updated), nil
}

// GetOrderByID 按 ID 查询订单，校验归属：
// 订单属主邮箱与调用方邮箱不一致时拒绝。
func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64, callerEmail string) (*OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	owner, err := s.userRepo.GetByID(ctx, o.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if owner.Email != callerEmail {
		return nil, ErrForbidden
	}
	return ProjectOrder(o), nil
}

// ListUserOrders 用户订单，按创建时间倒序分页
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64, req pagination.Request) (pagination.Page[*OrderResponse], error) {
	list, total, err := s.orderRepo.ListByUser(ctx, userID, req)
	if err != nil {
		return pagination.Page[*OrderResponse]{}, err
	}
	return pagination.New(projectOrders(list), total, req), nil
}

// ListAllOrders 后台全量订单，按创建时间倒序分页
func (s *OrderService) ListAllOrders(ctx context.Context, req pagination.Request) (pagination.Page[*OrderResponse], error) {
	list, total, err := s.orderRepo.ListAll(ctx, req)
	if err != nil {
		return pagination.Page[*OrderResponse]{}, err
	}
	return pagination.New(projectOrders(list), total, req), nil
}
