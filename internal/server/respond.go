package server

import (
	"errors"
	"strconv"

	"github.com/kataras/iris/v12"

	"github.com/example/luxeshop/internal/pagination"
	"github.com/example/luxeshop/internal/service"
)

// respondErr 把业务错误映射为 HTTP 状态码，统一响应包裹
func respondErr(ctx iris.Context, err error) {
	status := 500
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrUserNotFound):
		status = 404
	case errors.Is(err, service.ErrForbidden):
		status = 403
	case errors.Is(err, service.ErrInvalidCredentials):
		status = 401
	case errors.Is(err, service.ErrEmailTaken):
		status = 409
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrBlankAddress),
		errors.Is(err, service.ErrInvalidQuantity),
		service.IsInsufficientStock(err):
		status = 400
	}
	ctx.StopWithJSON(status, iris.Map{"code": status, "msg": err.Error()})
}

// pageRequest 从查询参数读取分页
func pageRequest(ctx iris.Context) pagination.Request {
	page, _ := strconv.Atoi(ctx.URLParamDefault("page", "1"))
	size, _ := strconv.Atoi(ctx.URLParamDefault("size", "20"))
	return pagination.Request{Page: page, Size: size}.Normalize()
}
