// internal/service/tracking/handler.go
package tracking

import (
	"net/http"
	"strconv"

	"barista/internal/pkg/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool { // 简化处理，允许所有跨域
		return true
	},
}

// ServeWS 把一个 HTTP 请求升级为 WebSocket，并订阅指定订单的事件流。
// 用法: GET /ws/orders?order_id=42
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.URL.Query().Get("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L().Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256), orderID: orderID}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
