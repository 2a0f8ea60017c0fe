// internal/service/order/domain/port/notification.go
package port

import (
	"context"

	"barista/internal/service/order/domain"
)

// OrderEventProducer 是订单生命周期事件的出站端口。
// 事件发送是尽力而为：发送失败记日志，不回滚已持久化的订单。
type OrderEventProducer interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order, from domain.Status) error
}
