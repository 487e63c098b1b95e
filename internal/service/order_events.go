package service

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/example/luxeshop/internal/datamodels/order"
)

// OrderEventsQueue 订单事件队列名
const OrderEventsQueue = "order_events"

// OrderPlacedMessage 下单成功事件
type OrderPlacedMessage struct {
	OrderID     int64  `json:"order_id"`
	UserID      int64  `json:"user_id"`
	TotalAmount string `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// OrderNotifier 把订单事件写入 RabbitMQ，供通知 worker 消费
type OrderNotifier struct {
	conn *amqp.Connection
}

func NewOrderNotifier(conn *amqp.Connection) *OrderNotifier {
	return &OrderNotifier{conn: conn}
}

// OrderPlaced 发布下单事件；事件只在事务提交之后发送
func (n *OrderNotifier) OrderPlaced(ctx context.Context, o *order.Order) error {
	if n == nil || n.conn == nil {
		return nil
	}
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(OrderEventsQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(&OrderPlacedMessage{
		OrderID:     o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount.StringFixed(2),
		ItemCount:   len(o.Items),
	})
	if err != nil {
		return err
	}

	return ch.PublishWithContext(
		ctx,
		"",
		OrderEventsQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
