// internal/service/catalog/domain/menu.go
package domain

import "strings"

// Menu 是一个可售卖的菜单项。
// Name 和 Price 创建后不再变化，Available 可以被上下架操作切换。
// 订单在创建时会把 Name 和 Price 快照进订单行，之后菜单怎么改都不影响已有订单。
type Menu struct {
	ID        int64
	Name      string
	Price     int64 // 最小货币单位
	Available bool
}

// NewMenu 创建一个菜单项。价格以最小货币单位计，不允许为负。
func NewMenu(name string, price int64, available bool) (*Menu, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankMenuName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Menu{
		Name:      name,
		Price:     price,
		Available: available,
	}, nil
}

// UpdateAvailability 切换上下架状态
func (m *Menu) UpdateAvailability(available bool) {
	m.Available = available
}
