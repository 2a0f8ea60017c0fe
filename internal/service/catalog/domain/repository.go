// internal/service/catalog/domain/repository.go
package domain

import "context"

// MenuRepository 定义了菜单数据的持久化接口。
// 它位于领域层，由基础设施层实现。
type MenuRepository interface {
	// Save 保存一个新菜单项并回填存储分配的 ID。
	Save(ctx context.Context, menu *Menu) error

	// FindByID 根据 ID 查找菜单项，不存在时返回 ErrMenuNotFound。
	FindByID(ctx context.Context, id int64) (*Menu, error)

	// FindAvailable 查找所有处于上架状态的菜单项。
	FindAvailable(ctx context.Context) ([]*Menu, error)

	// UpdateAvailability 切换上下架状态，不存在时返回 ErrMenuNotFound。
	UpdateAvailability(ctx context.Context, id int64, available bool) error
}
