// internal/service/tracking/consumer.go
package tracking

import (
	"context"
	"encoding/json"
	"time"

	"barista/internal/pkg/logger"
	"barista/internal/pkg/mq"
	orderdomain "barista/internal/service/order/domain"

	"github.com/segmentio/kafka-go"
)

// EventConsumer 消费订单事件主题，把事件转发给 Hub 广播。
type EventConsumer struct {
	reader *kafka.Reader
	hub    *Hub
}

func NewEventConsumer(reader *kafka.Reader, hub *Hub) *EventConsumer {
	return &EventConsumer{reader: reader, hub: hub}
}

// Run 是消费循环，ctx 取消后退出。
// 读取失败（通常是 broker 连接抖动）时短暂等待后继续。
func (c *EventConsumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.L().Error().Err(err).Msg("failed to read order event, retrying")
			time.Sleep(5 * time.Second)
			continue
		}

		msgCtx := mq.ExtractTraceContext(ctx, msg)

		var event orderdomain.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Ctx(msgCtx).Warn().Err(err).Msg("dropping malformed order event")
			continue
		}

		c.hub.Broadcast(event.OrderID, msg.Value)
		logger.Ctx(msgCtx).Debug().
			Int64("order_id", event.OrderID).
			Str("event_type", event.EventType).
			Msg("order event forwarded to subscribers")
	}
}
