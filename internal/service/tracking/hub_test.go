package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试里不起真连接，直接构造带缓冲 send 通道的 Client 往 Hub 里注册。
func newTestClient(h *Hub, orderID int64) *Client {
	return &Client{hub: h, send: make(chan []byte, 4), orderID: orderID}
}

func recvPayload(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHubBroadcastsToSubscribersOfOrder(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	customer := newTestClient(h, 7)
	barista := newTestClient(h, 7)
	other := newTestClient(h, 8)
	h.register <- customer
	h.register <- barista
	h.register <- other

	h.Broadcast(7, []byte(`{"status":"CONFIRMED"}`))

	assert.Equal(t, `{"status":"CONFIRMED"}`, string(recvPayload(t, customer)))
	assert.Equal(t, `{"status":"CONFIRMED"}`, string(recvPayload(t, barista)))

	select {
	case msg := <-other.send:
		t.Fatalf("client of another order received %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h, 7)
	h.register <- c
	h.unregister <- c

	select {
	case _, ok := <-c.send:
		assert.False(t, ok, "send channel must be closed on unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// 注销之后的广播没有接收方，也不应该阻塞
	h.Broadcast(7, []byte("late"))
}

// 发不进去的慢客户端被直接踢掉，不能拖住其它订阅者。
func TestHubDropsSlowClient(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	slow := &Client{hub: h, send: make(chan []byte), orderID: 7} // 无缓冲且无人读
	fast := newTestClient(h, 7)
	h.register <- slow
	h.register <- fast

	h.Broadcast(7, []byte("first"))
	require.Equal(t, "first", string(recvPayload(t, fast)))

	select {
	case _, ok := <-slow.send:
		assert.False(t, ok, "slow client's channel must be closed")
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}

	// 踢掉慢客户端后快客户端照常收
	h.Broadcast(7, []byte("second"))
	assert.Equal(t, "second", string(recvPayload(t, fast)))
}
