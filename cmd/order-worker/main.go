package main

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/example/luxeshop/internal/config"
	"github.com/example/luxeshop/internal/infra/mq"
	"github.com/example/luxeshop/internal/logger"
	"github.com/example/luxeshop/internal/service"
)

// 消费下单事件，当前实现只做记录；
// 后续可接邮件 / 短信通知。
func main() {
	logger.Init()

	cfg, err := config.Load("./config")
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}

	mqConn := mq.Init(&cfg.RabbitMQ)

	ch, err := mqConn.Channel()
	if err != nil {
		zap.L().Fatal("failed to open channel", zap.Error(err))
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(service.OrderEventsQueue, true, false, false, false, nil); err != nil {
		zap.L().Fatal("failed to declare queue", zap.Error(err))
	}

	// 手动确认模式（auto-ack=false）
	msgs, err := ch.Consume(service.OrderEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		zap.L().Fatal("failed to consume", zap.Error(err))
	}

	zap.L().Info("order worker started, waiting for events")

	for d := range msgs {
		var m service.OrderPlacedMessage
		if err := json.Unmarshal(d.Body, &m); err != nil {
			zap.L().Warn("invalid event payload", zap.Error(err))
			// 消息格式错误，拒绝并丢弃
			_ = d.Nack(false, false)
			continue
		}
		zap.L().Info("order placed",
			zap.Int64("order_id", m.OrderID),
			zap.Int64("user_id", m.UserID),
			zap.String("total_amount", m.TotalAmount),
			zap.Int("item_count", m.ItemCount),
		)
		if err := d.Ack(false); err != nil {
			zap.L().Warn("failed to ack event", zap.Error(err))
		}
	}
}
