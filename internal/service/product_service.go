package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/pagination"
)

// ProductService 商品目录：前台浏览 / 搜索，后台增改与下架
type ProductService struct {
	repo product.Repository
}

func NewProductService(repo product.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// Browse 前台商品列表，按分类 / 关键字二选一过滤
func (s *ProductService) Browse(ctx context.Context, category, keyword string, req pagination.Request) (pagination.Page[*product.Product], error) {
	var (
		list  []*product.Product
		total int64
		err   error
	)
	switch {
	case keyword != "":
		list, total, err = s.repo.Search(ctx, keyword, req)
	case category != "" && category != "all":
		list, total, err = s.repo.ListByCategory(ctx, category, req)
	default:
		list, total, err = s.repo.ListActive(ctx, req)
	}
	if err != nil {
		return pagination.Page[*product.Product]{}, err
	}
	return pagination.New(list, total, req), nil
}

// ListAll 后台商品列表（含已下架）
func (s *ProductService) ListAll(ctx context.Context, req pagination.Request) (pagination.Page[*product.Product], error) {
	list, total, err := s.repo.ListAll(ctx, req)
	if err != nil {
		return pagination.Page[*product.Product]{}, err
	}
	return pagination.New(list, total, req), nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *ProductService) Create(ctx context.Context, p *product.Product) error {
	return s.repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *product.Product) error {
	return s.repo.Update(ctx, p)
}

// Deactivate 软删除：仅下架，历史订单行不受影响
func (s *ProductService) Deactivate(ctx context.Context, id int64) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Active = false
	return s.repo.Update(ctx, p)
}
