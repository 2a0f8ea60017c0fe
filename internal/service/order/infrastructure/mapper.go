// internal/service/order/infrastructure/mapper.go
package infrastructure

import (
	"database/sql"

	"barista/internal/service/order/domain"
)

// 将数据库模型转换为领域模型
func toDomainOrder(m *OrderModel) *domain.Order {
	items := make([]domain.LineItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.LineItem{
			MenuID:    it.MenuID,
			MenuName:  it.MenuName,
			MenuPrice: it.MenuPrice,
			Quantity:  it.Quantity,
		}
	}
	return &domain.Order{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		Status:        domain.Status(m.Status),
		Items:         items,
		TotalPrice:    m.TotalPrice,
		AttachmentKey: m.AttachmentKey.String,
		Version:       m.Version,
		OrderedAt:     m.OrderedAt,
	}
}

// 将领域模型转换为数据库模型
func toOrderModel(o *domain.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemModel{
			MenuID:    it.MenuID,
			MenuName:  it.MenuName,
			MenuPrice: it.MenuPrice,
			Quantity:  it.Quantity,
		}
	}
	return &OrderModel{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Status:        string(o.Status),
		TotalPrice:    o.TotalPrice,
		AttachmentKey: sql.NullString{String: o.AttachmentKey, Valid: o.AttachmentKey != ""},
		Version:       o.Version,
		OrderedAt:     o.OrderedAt,
	}
}
