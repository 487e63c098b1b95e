package server

import (
	"time"

	"github.com/kataras/iris/v12"

	"github.com/example/luxeshop/internal/auth"
	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/infra/mq"
	"github.com/example/luxeshop/internal/infra/redis"
	"github.com/example/luxeshop/internal/middleware"
	"github.com/example/luxeshop/internal/repository/mysql"
	"github.com/example/luxeshop/internal/service"
)

// RegisterRoutes 注册前台商城的所有 HTTP 路由
func RegisterRoutes(app *iris.Application, cfg *config.Config) {
	// 初始化基础设施
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	// 仓储与服务
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)

	authSvc := service.NewAuthService(userRepo, &cfg.JWT)
	productSvc := service.NewProductService(productRepo)
	cartSvc := service.NewCartService(cartRepo, productRepo)
	orderSvc := service.NewOrderService(db, orderRepo, userRepo, service.NewOrderNotifier(mqConn))

	tokenCache := auth.NewTokenCache(redisClient, time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	api := app.Party("/api")

	// 健康检查
	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "msg": "ok"})
	})

	// ---------- 注册 / 登录 ----------

	api.Post("/auth/register", func(ctx iris.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
			Phone    string `json:"phone"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if req.Email == "" || req.Password == "" {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": "email and password are required"})
			return
		}
		result, err := authSvc.Register(ctx.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": result})
	})

	api.Post("/auth/login", func(ctx iris.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		result, err := authSvc.Login(ctx.Request().Context(), req.Email, req.Password)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": result})
	})

	// ---------- 商品浏览（无需登录） ----------

	api.Get("/products", func(ctx iris.Context) {
		category := ctx.URLParam("category")
		keyword := ctx.URLParam("q")
		page, err := productSvc.Browse(ctx.Request().Context(), category, keyword, pageRequest(ctx))
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": page})
	})

	api.Get("/products/categories", func(ctx iris.Context) {
		list, err := productSvc.Categories(ctx.Request().Context())
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	api.Get("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		p, err := productSvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	// ---------- 需要登录的接口 ----------

	authAPI := api.Party("/", authRequired(&cfg.JWT, tokenCache))

	// 购物车
	authAPI.Get("/cart", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		view, err := cartSvc.GetCart(ctx.Request().Context(), userID)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": view})
	})

	authAPI.Post("/cart", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		var req struct {
			ProductID int64 `json:"product_id"`
			Quantity  int64 `json:"quantity"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		view, err := cartSvc.AddItem(ctx.Request().Context(), userID, req.ProductID, req.Quantity)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": view})
	})

	authAPI.Put("/cart/items/{id:int64}", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		itemID, _ := ctx.Params().GetInt64("id")
		var req struct {
			Quantity int64 `json:"quantity"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		view, err := cartSvc.UpdateItem(ctx.Request().Context(), userID, itemID, req.Quantity)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": view})
	})

	authAPI.Delete("/cart/items/{id:int64}", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		itemID, _ := ctx.Params().GetInt64("id")
		view, err := cartSvc.RemoveItem(ctx.Request().Context(), userID, itemID)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": view})
	})

	authAPI.Delete("/cart", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		if err := cartSvc.Clear(ctx.Request().Context(), userID); err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "msg": "cart cleared"})
	})

	// 下单（限流）
	authAPI.Post("/orders", middleware.CheckoutRateLimit(), func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		var req struct {
			ShippingAddress string `json:"shipping_address"`
			PaymentMethod   string `json:"payment_method"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		resp, err := orderSvc.PlaceOrder(ctx.Request().Context(), userID, req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": resp})
	})

	// 我的订单
	authAPI.Get("/orders", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		page, err := orderSvc.ListUserOrders(ctx.Request().Context(), userID, pageRequest(ctx))
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": page})
	})

	// 订单详情（仅本人可见）
	authAPI.Get("/orders/{id:int64}", func(ctx iris.Context) {
		orderID, _ := ctx.Params().GetInt64("id")
		email := ctx.Values().GetString("email")
		resp, err := orderSvc.GetOrderByID(ctx.Request().Context(), orderID, email)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": resp})
	})
}
