package server

import (
	"errors"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/shopspring/decimal"

	"github.com/example/luxeshop/internal/auth"
	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/product"
	"github.com/example/luxeshop/internal/infra/redis"
	"github.com/example/luxeshop/internal/repository/mysql"
	"github.com/example/luxeshop/internal/service"
)

// productRequest 后台商品创建 / 更新入参
type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Stock         int64           `json:"stock"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	SKU           string          `json:"sku"`
	Active        *bool           `json:"active"`
}

func (r *productRequest) applyTo(p *product.Product) error {
	if r.Name == "" {
		return errBlankName
	}
	if r.Price.IsNegative() || r.Stock < 0 {
		return errNegativePriceStock
	}
	p.Name = r.Name
	p.Description = r.Description
	p.Price = r.Price
	p.OriginalPrice = r.OriginalPrice
	p.Stock = r.Stock
	p.ImageURL = r.ImageURL
	p.Category = r.Category
	p.Brand = r.Brand
	p.SKU = r.SKU
	if r.Active != nil {
		p.Active = *r.Active
	}
	return nil
}

var (
	errBlankName          = errors.New("product name is required")
	errNegativePriceStock = errors.New("price and stock must be non-negative")
)

// RegisterAdminRoutes 注册后台管理端的 HTTP 路由。
// 端口通常是 8081，与前台 Web 服务分离；所有接口要求 ADMIN 角色。
func RegisterAdminRoutes(app *iris.Application, cfg *config.Config) {
	// 初始化基础设施
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)

	// 仓储与服务
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)

	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(db, orderRepo, userRepo, nil)
	statsSvc := service.NewStatsService(productRepo, orderRepo, userRepo)

	tokenCache := auth.NewTokenCache(redisClient, time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	api := app.Party("/api", authRequired(&cfg.JWT, tokenCache), adminOnly())

	// ---------- 商品管理 ----------

	// 商品列表（后台用：含已下架）
	api.Get("/products", func(ctx iris.Context) {
		page, err := productSvc.ListAll(ctx.Request().Context(), pageRequest(ctx))
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": page})
	})

	// 创建商品
	api.Post("/products", func(ctx iris.Context) {
		var req productRequest
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p := &product.Product{Active: true}
		if err := req.applyTo(p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := productSvc.Create(ctx.Request().Context(), p); err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	// 更新商品
	api.Put("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		p, err := productSvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		var req productRequest
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := req.applyTo(p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := productSvc.Update(ctx.Request().Context(), p); err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	// 下架商品（软删除）
	api.Delete("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		if err := productSvc.Deactivate(ctx.Request().Context(), id); err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "msg": "deactivated"})
	})

	// ---------- 订单管理 ----------

	// 全部订单，按创建时间倒序
	api.Get("/orders", func(ctx iris.Context) {
		page, err := orderSvc.ListAllOrders(ctx.Request().Context(), pageRequest(ctx))
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": page})
	})

	// 修改订单状态（取消会回补库存）
	api.Patch("/orders/{id:int64}/status", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		var req struct {
			Status string `json:"status"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		resp, err := orderSvc.UpdateOrderStatus(ctx.Request().Context(), id, req.Status)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": resp})
	})

	// ---------- 用户 / 看板 ----------

	api.Get("/users", func(ctx iris.Context) {
		list, err := userRepo.ListAll(ctx.Request().Context())
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	api.Get("/stats", func(ctx iris.Context) {
		stats, err := statsSvc.Dashboard(ctx.Request().Context())
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": stats})
	})
}
