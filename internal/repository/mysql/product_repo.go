package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/pagination"
)

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// paginate 统一执行 count + 分页查询
func (r *productRepo) paginate(query *gorm.DB, req pagination.Request) ([]*product.Product, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []*product.Product
	if err := query.
		Order("id DESC").
		Offset(req.Offset()).
		Limit(req.Limit()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) ListAll(ctx context.Context, req pagination.Request) ([]*product.Product, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&product.Product{}), req)
}

func (r *productRepo) ListActive(ctx context.Context, req pagination.Request) ([]*product.Product, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&product.Product{}).
		Where("active = ?", true), req)
}

func (r *productRepo) ListByCategory(ctx context.Context, category string, req pagination.Request) ([]*product.Product, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&product.Product{}).
		Where("active = ? AND category = ?", true, category), req)
}

func (r *productRepo) Search(ctx context.Context, keyword string, req pagination.Request) ([]*product.Product, int64, error) {
	like := "%" + keyword + "%"
	return r.paginate(r.db.WithContext(ctx).Model(&product.Product{}).
		Where("active = ? AND (name LIKE ? OR brand LIKE ? OR description LIKE ?)", true, like, like, like), req)
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	var list []string
	if err := r.db.WithContext(ctx).Model(&product.Product{}).
		Where("active = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) Create(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&product.Product{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
