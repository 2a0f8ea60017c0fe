// internal/service/order/application/dto.go
package application

import (
	"time"

	"barista/internal/service/order/domain"
)

// OrderItemRequest 是创建订单时的单个订单行请求
type OrderItemRequest struct {
	MenuID   int64 `json:"menu_id"`
	Quantity int32 `json:"quantity"`
}

// Attachment 是随订单上传的附件（小票、凭证图片等）
type Attachment struct {
	Data        []byte
	ContentType string
	Filename    string
}

// CreateOrderRequest 是创建订单用例的输入数据
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"order_items"`
	Attachment   *Attachment        `json:"-"` // 从 multipart 文件部分来，不走 JSON
}

// OrderItemResponse 是订单行的对外投影，带每行小计
type OrderItemResponse struct {
	MenuID    int64  `json:"menu_id"`
	MenuName  string `json:"menu_name"`
	MenuPrice int64  `json:"menu_price"`
	Quantity  int32  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// OrderResponse 是订单的对外投影
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerName  string              `json:"customer_name"`
	Status        domain.Status       `json:"status"`
	Items         []OrderItemResponse `json:"order_items"`
	TotalPrice    int64               `json:"total_price"`
	AttachmentKey string              `json:"attachment_key,omitempty"`
	OrderedAt     time.Time           `json:"ordered_at"`
}

// FromOrder 把领域聚合转换为对外投影
func FromOrder(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, li := range o.Items {
		items[i] = OrderItemResponse{
			MenuID:    li.MenuID,
			MenuName:  li.MenuName,
			MenuPrice: li.MenuPrice,
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal(),
		}
	}
	return &OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Status:        o.Status,
		Items:         items,
		TotalPrice:    o.TotalPrice,
		AttachmentKey: o.AttachmentKey,
		OrderedAt:     o.OrderedAt,
	}
}
