package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/pagination"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64, req pagination.Request) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&order.Order{}).Where("user_id = ?", userID)
	return r.paginate(query, req)
}

func (r *orderRepo) ListAll(ctx context.Context, req pagination.Request) ([]*order.Order, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&order.Order{}), req)
}

func (r *orderRepo) paginate(query *gorm.DB, req pagination.Request) ([]*order.Order, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []*order.Order
	if err := query.
		Preload("Items").
		Order("created_at DESC, id DESC").
		Offset(req.Offset()).
		Limit(req.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Revenue 统计非取消订单的总金额
func (r *orderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("status <> ?", order.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
