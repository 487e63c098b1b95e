package service

import (
	"sync"
	"time"
)

// Monitor 监控服务，用于统计下单链路的错误和吞吐
type Monitor struct {
	mu sync.RWMutex

	// 错误统计
	DBErrors       int64
	MQErrors       int64
	StockConflicts int64

	// 业务统计
	OrderRequests   int64
	OrdersPlaced    int64
	OrdersCancelled int64

	// 时间统计
	LastDBError    time.Time
	LastMQError    time.Time
	LastOrderTime  time.Time
	LastCancelTime time.Time
}

var globalMonitor = &Monitor{}

// GetMonitor 获取全局监控实例
func GetMonitor() *Monitor {
	return globalMonitor
}

// RecordDBError 记录数据库错误
func (m *Monitor) RecordDBError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors++
	m.LastDBError = time.Now()
}

// RecordMQError 记录MQ错误
func (m *Monitor) RecordMQError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MQErrors++
	m.LastMQError = time.Now()
}

// RecordStockConflict 记录因库存不足被拒绝的下单
func (m *Monitor) RecordStockConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StockConflicts++
}

// RecordOrderRequest 记录下单请求
func (m *Monitor) RecordOrderRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrderRequests++
}

// RecordOrderPlaced 记录成功下单
func (m *Monitor) RecordOrderPlaced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrdersPlaced++
	m.LastOrderTime = time.Now()
}

// RecordOrderCancelled 记录订单取消
func (m *Monitor) RecordOrderCancelled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OrdersCancelled++
	m.LastCancelTime = time.Now()
}

// Snapshot 导出当前计数，供后台看板展示
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return map[string]interface{}{
		"order_requests":   m.OrderRequests,
		"orders_placed":    m.OrdersPlaced,
		"orders_cancelled": m.OrdersCancelled,
		"stock_conflicts":  m.StockConflicts,
		"db_errors":        m.DBErrors,
		"mq_errors":        m.MQErrors,
	}
}
