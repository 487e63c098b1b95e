package order

import "strings"

// Status 订单状态，闭合枚举：
// PENDING -> SHIPPED -> DELIVERED，CANCELLED 可从任意非终态进入。
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus 解析状态字符串（大小写不敏感），未知值返回 ok=false
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusShipped:
		return StatusShipped, true
	case StatusDelivered:
		return StatusDelivered, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// Terminal 是否终态
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// RestockOnTransition 该次状态变更是否需要把订单行数量加回商品库存。
// 只有首次进入 CANCELLED 时回补；重复取消是幂等的空操作。
func RestockOnTransition(from, to Status) bool {
	return to == StatusCancelled && from != StatusCancelled
}
