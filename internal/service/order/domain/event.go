// internal/service/order/domain/event.go
package domain

import "time"

const (
	EventTypeOrderCreated       = "order_created"
	EventTypeOrderStatusChanged = "order_status_changed"
)

// OrderEvent 是发往 Kafka 的订单生命周期事件。
// 同一个订单的事件用订单 ID 做分区 Key，保证消费侧看到的顺序。
type OrderEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	FromStatus   Status    `json:"from_status,omitempty"`
	Status       Status    `json:"status"`
	TotalPrice   int64     `json:"total_price,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
