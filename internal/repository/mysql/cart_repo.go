package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/cart"
)

type cartRepo struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepo{db: db}
}

func (r *cartRepo) ListByUser(ctx context.Context, userID int64) ([]*cart.Item, error) {
	var list []*cart.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cartRepo) GetByID(ctx context.Context, id int64) (*cart.Item, error) {
	var item cart.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*cart.Item, error) {
	var item cart.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) Create(ctx context.Context, item *cart.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepo) Update(ctx context.Context, item *cart.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&cart.Item{}, id).Error
}

func (r *cartRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&cart.Item{}).Error
}
