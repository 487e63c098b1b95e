package service

import (
	"errors"
	"fmt"
)

// 业务错误，统一在 HTTP 层映射为状态码；
// 任何一个错误都会让所在事务整体回滚。
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("not allowed to access this order")
	ErrInvalidStatus      = errors.New("unrecognized order status")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBlankAddress       = errors.New("shipping address is required")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

// InsufficientStockError 库存不足，标明具体商品
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id=%d): requested %d, available %d",
		e.ProductName, e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock 判断错误链上是否为库存不足
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}

// isBusinessError 区分业务拒绝与基础设施故障，后者计入错误监控
func isBusinessError(err error) bool {
	for _, e := range []error{
		ErrEmptyCart, ErrOrderNotFound, ErrProductNotFound,
		ErrCartItemNotFound, ErrUserNotFound, ErrForbidden,
		ErrInvalidStatus, ErrBlankAddress, ErrInvalidQuantity,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return IsInsufficientStock(err)
}
