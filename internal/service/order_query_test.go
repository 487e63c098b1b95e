package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/luxeshop/internal/datamodels/order"
	"github.com/example/luxeshop/internal/datamodels/user"
	"github.com/example/luxeshop/internal/pagination"
)

// ---- 内存仓储，仅用于查询路径测试 ----

type fakeOrderRepo struct {
	orders map[int64]*order.Order
}

func newFakeOrderRepo(orders ...*order.Order) *fakeOrderRepo {
	m := make(map[int64]*order.Order)
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) sorted(filter func(*order.Order) bool) []*order.Order {
	var list []*order.Order
	for _, o := range r.orders {
		if filter == nil || filter(o) {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func paginate(list []*order.Order, req pagination.Request) []*order.Order {
	off, lim := req.Offset(), req.Limit()
	if off >= len(list) {
		return nil
	}
	end := off + lim
	if end > len(list) {
		end = len(list)
	}
	return list[off:end]
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int64, req pagination.Request) ([]*order.Order, int64, error) {
	list := r.sorted(func(o *order.Order) bool { return o.UserID == userID })
	return paginate(list, req), int64(len(list)), nil
}

func (r *fakeOrderRepo) ListAll(ctx context.Context, req pagination.Request) ([]*order.Order, int64, error) {
	list := r.sorted(nil)
	return paginate(list, req), int64(len(list)), nil
}

func (r *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range r.orders {
		if o.Status != order.StatusCancelled {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

type fakeUserRepo struct {
	users map[int64]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	m := make(map[int64]*user.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if u.ID == 0 {
		u.ID = int64(len(r.users) + 1)
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]*user.User, error) {
	var list []*user.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// ---- 查询路径 ----

func TestGetOrderByIDOwnership(t *testing.T) {
	alice := &user.User{ID: 1, Email: "alice@luxe.com"}
	bob := &user.User{ID: 2, Email: "bob@luxe.com"}
	o := &order.Order{ID: 10, UserID: 1, Status: order.StatusPending, TotalAmount: price("29.70")}

	svc := NewOrderService(nil, newFakeOrderRepo(o), newFakeUserRepo(alice, bob), nil)

	// 属主可以读
	resp, err := svc.GetOrderByID(context.Background(), 10, "alice@luxe.com")
	require.NoError(t, err)
	require.Equal(t, int64(10), resp.ID)

	// 其他用户被拒绝
	_, err = svc.GetOrderByID(context.Background(), 10, "bob@luxe.com")
	require.ErrorIs(t, err, ErrForbidden)

	// 不存在的订单
	_, err = svc.GetOrderByID(context.Background(), 999, "alice@luxe.com")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListUserOrdersNewestFirst(t *testing.T) {
	now := time.Now()
	orders := []*order.Order{
		{ID: 1, UserID: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, UserID: 1, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 3, UserID: 1, CreatedAt: now},
		{ID: 4, UserID: 2, CreatedAt: now},
	}
	svc := NewOrderService(nil, newFakeOrderRepo(orders...), newFakeUserRepo(), nil)

	page, err := svc.ListUserOrders(context.Background(), 1, pagination.Request{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	require.Equal(t, int64(2), page.TotalPages)
	require.Len(t, page.Items, 2)
	require.Equal(t, int64(3), page.Items[0].ID)
	require.Equal(t, int64(2), page.Items[1].ID)
}

func TestListAllOrdersIncludesEveryUser(t *testing.T) {
	now := time.Now()
	orders := []*order.Order{
		{ID: 1, UserID: 1, CreatedAt: now.Add(-time.Minute)},
		{ID: 2, UserID: 2, CreatedAt: now},
	}
	svc := NewOrderService(nil, newFakeOrderRepo(orders...), newFakeUserRepo(), nil)

	page, err := svc.ListAllOrders(context.Background(), pagination.Request{})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, int64(2), page.Items[0].ID)
}
