package service

import (
	"context"

	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/datamodels/user"
)

// StatsService 后台看板统计
type StatsService struct {
	productRepo product.Repository
	orderRepo   order.Repository
	userRepo    user.Repository
}

func NewStatsService(productRepo product.Repository, orderRepo order.Repository, userRepo user.Repository) *StatsService {
	return &StatsService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

// Dashboard 汇总商品 / 订单 / 用户数量与非取消订单营收，
// 附带进程内工作流计数器。
func (s *StatsService) Dashboard(ctx context.Context) (map[string]interface{}, error) {
	products, err := s.productRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"total_products": products,
		"total_orders":   orders,
		"total_users":    users,
		"total_revenue":  revenue,
		"workflow":       GetMonitor().Snapshot(),
	}, nil
}
