package server

import (
	"strings"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/example/luxeshop/internal/auth"
	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/datamodels/user"
)

// authRequired 解析 Authorization 头里的 JWT，优先命中 Redis 缓存，
// 成功后把身份信息写入请求上下文。
func authRequired(cfg *config.JWTConfig, cache *auth.TokenCache) iris.Handler {
	return func(ctx iris.Context) {
		token := ctx.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "missing token"})
			return
		}

		var claims *auth.Claims
		if cache != nil {
			cached, hit, err := cache.Get(ctx.Request().Context(), token)
			if err != nil {
				zap.L().Warn("token cache lookup failed", zap.Error(err))
			} else if hit {
				claims = cached
			}
		}
		if claims == nil {
			parsed, err := auth.ParseToken(cfg, token)
			if err != nil {
				ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "invalid token"})
				return
			}
			claims = parsed
			if cache != nil {
				_ = cache.Set(ctx.Request().Context(), token, claims)
			}
		}

		ctx.Values().Set("user_id", claims.UserID)
		ctx.Values().Set("email", claims.Email)
		ctx.Values().Set("role", claims.Role)
		ctx.Next()
	}
}

// adminOnly 只放行 ADMIN 角色
func adminOnly() iris.Handler {
	return func(ctx iris.Context) {
		if ctx.Values().GetString("role") != user.RoleAdmin {
			ctx.StopWithJSON(403, iris.Map{"code": 403, "msg": "admin role required"})
			return
		}
		ctx.Next()
	}
}
