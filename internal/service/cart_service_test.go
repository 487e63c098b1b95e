package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/cart"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/pagination"
)

// ---- 内存仓储 ----

type fakeCartRepo struct {
	items  map[int64]*cart.Item
	nextID int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64]*cart.Item), nextID: 1}
}

func (r *fakeCartRepo) ListByUser(ctx context.Context, userID int64) ([]*cart.Item, error) {
	var list []*cart.Item
	for id := int64(1); id < r.nextID; id++ {
		if item, ok := r.items[id]; ok && item.UserID == userID {
			list = append(list, item)
		}
	}
	return list, nil
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id int64) (*cart.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeCartRepo) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*cart.Item, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepo) Create(ctx context.Context, item *cart.Item) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *fakeCartRepo) Update(ctx context.Context, item *cart.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) DeleteByUser(ctx context.Context, userID int64) error {
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[int64]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	m := make(map[int64]*product.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) all() []*product.Product {
	var list []*product.Product
	for _, p := range r.products {
		list = append(list, p)
	}
	return list
}

func (r *fakeProductRepo) ListAll(ctx context.Context, req pagination.Request) ([]*product.Product, int64, error) {
	list := r.all()
	return list, int64(len(list)), nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context, req pagination.Request) ([]*product.Product, int64, error) {
	var list []*product.Product
	for _, p := range r.all() {
		if p.Active {
			list = append(list, p)
		}
	}
	return list, int64(len(list)), nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, category string, req pagination.Request) ([]*product.Product, int64, error) {
	var list []*product.Product
	for _, p := range r.all() {
		if p.Active && p.Category == category {
			list = append(list, p)
		}
	}
	return list, int64(len(list)), nil
}

func (r *fakeProductRepo) Search(ctx context.Context, keyword string, req pagination.Request) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) CountActive(ctx context.Context) (int64, error) {
	list, _, _ := r.ListActive(ctx, pagination.Request{})
	return int64(len(list)), nil
}

// ---- 购物车 ----

func TestGetCartTotals(t *testing.T) {
	products := newFakeProductRepo(
		&product.Product{ID: 1, Name: "a", Price: price("10.50"), Active: true},
		&product.Product{ID: 2, Name: "b", Price: price("5.25"), Active: true},
	)
	carts := newFakeCartRepo()
	svc := NewCartService(carts, products)

	_, err := svc.AddItem(context.Background(), 1, 1, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(context.Background(), 1, 2, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	require.Equal(t, int64(3), view.ItemCount)
	require.True(t, view.Total.Equal(price("26.25")), "total = %s", view.Total)
	require.True(t, view.Items[0].Subtotal.Equal(price("21.00")))
}

func TestAddItemMergesQuantity(t *testing.T) {
	products := newFakeProductRepo(&product.Product{ID: 1, Name: "a", Price: price("1.00"), Active: true})
	svc := NewCartService(newFakeCartRepo(), products)

	_, err := svc.AddItem(context.Background(), 1, 1, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(context.Background(), 1, 1, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	require.Equal(t, int64(5), view.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	products := newFakeProductRepo(&product.Product{ID: 1, Price: price("1.00"), Active: true})
	svc := NewCartService(newFakeCartRepo(), products)

	_, err := svc.AddItem(context.Background(), 1, 1, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), 1, 999, 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateItemZeroRemoves(t *testing.T) {
	products := newFakeProductRepo(&product.Product{ID: 1, Price: price("1.00"), Active: true})
	svc := NewCartService(newFakeCartRepo(), products)

	view, err := svc.AddItem(context.Background(), 1, 1, 2)
	require.NoError(t, err)
	itemID := view.Items[0].ID

	view, err = svc.UpdateItem(context.Background(), 1, itemID, 0)
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestUpdateItemForeignUserForbidden(t *testing.T) {
	products := newFakeProductRepo(&product.Product{ID: 1, Price: price("1.00"), Active: true})
	svc := NewCartService(newFakeCartRepo(), products)

	view, err := svc.AddItem(context.Background(), 1, 1, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItem(context.Background(), 2, view.Items[0].ID, 5)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestClearCart(t *testing.T) {
	products := newFakeProductRepo(&product.Product{ID: 1, Price: price("1.00"), Active: true})
	carts := newFakeCartRepo()
	svc := NewCartService(carts, products)

	_, err := svc.AddItem(context.Background(), 1, 1, 2)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(context.Background(), 1))

	view, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.True(t, view.Total.IsZero())
}
