package infrastructure

import (
	"testing"
	"time"

	"barista/internal/service/order/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderModelRoundTrip(t *testing.T) {
	orderedAt := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID:           7,
		CustomerName: "김춘식",
		Status:       domain.StatusConfirmed,
		Items: []domain.LineItem{
			{MenuID: 1, MenuName: "americano", MenuPrice: 1000, Quantity: 3},
			{MenuID: 2, MenuName: "라떼", MenuPrice: 4500, Quantity: 2},
		},
		TotalPrice:    12000,
		AttachmentKey: "attachments/receipt-1.png",
		Version:       3,
		OrderedAt:     orderedAt,
	}

	model := toOrderModel(order)
	require.True(t, model.AttachmentKey.Valid)
	assert.Equal(t, "attachments/receipt-1.png", model.AttachmentKey.String)
	assert.Equal(t, "CONFIRMED", model.Status)

	// 订单行回读时 GORM 会填上 Items 关联，手动补齐
	model.Items = []OrderItemModel{
		{OrderID: 7, MenuID: 1, MenuName: "americano", MenuPrice: 1000, Quantity: 3},
		{OrderID: 7, MenuID: 2, MenuName: "라떼", MenuPrice: 4500, Quantity: 2},
	}

	back := toDomainOrder(model)
	assert.Equal(t, order.ID, back.ID)
	assert.Equal(t, order.CustomerName, back.CustomerName)
	assert.Equal(t, order.Status, back.Status)
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, order.TotalPrice, back.TotalPrice)
	assert.Equal(t, order.AttachmentKey, back.AttachmentKey)
	assert.Equal(t, order.Version, back.Version)
	assert.True(t, back.OrderedAt.Equal(orderedAt))
}

// 没有附件的订单，AttachmentKey 列必须是 NULL 而不是空字符串。
func TestOrderModelNullAttachmentKey(t *testing.T) {
	order := &domain.Order{ID: 1, CustomerName: "김춘식", Status: domain.StatusPending}

	model := toOrderModel(order)
	assert.False(t, model.AttachmentKey.Valid)

	back := toDomainOrder(model)
	assert.Empty(t, back.AttachmentKey)
}
