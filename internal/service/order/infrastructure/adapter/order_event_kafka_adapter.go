// internal/service/order/infrastructure/adapter/order_event_kafka_adapter.go
package adapter

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"barista/internal/pkg/mq"
	"barista/internal/service/order/domain"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// OrderEventKafkaAdapter 实现了 port.OrderEventProducer 接口。
// 事件用订单 ID 做分区 Key，单个订单的事件在消费侧保持顺序。
type OrderEventKafkaAdapter struct {
	writer *kafka.Writer
}

// NewOrderEventKafkaAdapter 创建一个新的事件生产者适配器
func NewOrderEventKafkaAdapter(writer *kafka.Writer) *OrderEventKafkaAdapter {
	return &OrderEventKafkaAdapter{writer: writer}
}

// OrderCreated 发出订单创建事件
func (a *OrderEventKafkaAdapter) OrderCreated(ctx context.Context, order *domain.Order) error {
	return a.produce(ctx, domain.OrderEvent{
		EventID:      uuid.New().String(),
		EventType:    domain.EventTypeOrderCreated,
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		TotalPrice:   order.TotalPrice,
		OccurredAt:   time.Now(),
	})
}

// OrderStatusChanged 发出状态流转事件
func (a *OrderEventKafkaAdapter) OrderStatusChanged(ctx context.Context, order *domain.Order, from domain.Status) error {
	return a.produce(ctx, domain.OrderEvent{
		EventID:    uuid.New().String(),
		EventType:  domain.EventTypeOrderStatusChanged,
		OrderID:    order.ID,
		FromStatus: from,
		Status:     order.Status,
		OccurredAt: time.Now(),
	})
}

func (a *OrderEventKafkaAdapter) produce(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order event")
	}
	key := []byte(strconv.FormatInt(event.OrderID, 10))
	// mq.ProduceMessage 会把链路追踪上下文注入消息头
	return mq.ProduceMessage(ctx, a.writer, key, payload)
}

// Close 关闭底层的 Kafka writer
func (a *OrderEventKafkaAdapter) Close() error {
	return a.writer.Close()
}
