// internal/service/order/domain/port/catalog.go
package port

import (
	"context"

	catalog "barista/internal/service/catalog/domain"
)

// Catalog 是订单服务对菜单目录的出站端口。
// 订单只读目录：按 ID 解析菜单项并拿到当前的可售状态。
type Catalog interface {
	// FindMenuByID 解析一个菜单 ID，不存在时返回 catalog.ErrMenuNotFound。
	FindMenuByID(ctx context.Context, menuID int64) (*catalog.Menu, error)
}
