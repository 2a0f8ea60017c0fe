// internal/service/tracking/hub.go
package tracking

import (
	"context"

	"barista/internal/pkg/logger"
)

// OrderUpdate 是要推送给订阅者的一条订单事件
type OrderUpdate struct {
	OrderID int64
	Payload []byte
}

// Hub 维护所有活跃的 WebSocket 连接，并按订单 ID 广播事件。
// 同一个订单可以有多个订阅者（顾客和店员都盯着同一单）。
type Hub struct {
	clients    map[int64]map[*Client]struct{} // 订单 ID -> 订阅的连接集合
	register   chan *Client
	unregister chan *Client
	broadcast  chan OrderUpdate
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan OrderUpdate, 64),
	}
}

// Run 是 Hub 的事件循环，所有对 clients 的读写都收敛到这个 goroutine，
// 不需要锁。ctx 取消后退出。
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			subs := h.clients[client.orderID]
			if subs == nil {
				subs = make(map[*Client]struct{})
				h.clients[client.orderID] = subs
			}
			subs[client] = struct{}{}
			logger.L().Debug().Int64("order_id", client.orderID).Msg("tracking client registered")
		case client := <-h.unregister:
			if subs, ok := h.clients[client.orderID]; ok {
				if _, ok := subs[client]; ok {
					delete(subs, client)
					close(client.send)
					if len(subs) == 0 {
						delete(h.clients, client.orderID)
					}
				}
			}
		case update := <-h.broadcast:
			for client := range h.clients[update.OrderID] {
				select {
				case client.send <- update.Payload:
				default:
					// 写不进去说明客户端跟不上，断开它而不是拖垮整个广播
					delete(h.clients[update.OrderID], client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast 把一条订单事件投递给所有订阅了该订单的连接
func (h *Hub) Broadcast(orderID int64, payload []byte) {
	h.broadcast <- OrderUpdate{OrderID: orderID, Payload: payload}
}
