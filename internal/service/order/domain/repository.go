// internal/service/order/domain/repository.go
package domain

import "context"

// OrderRepository 定义了订单聚合的持久化接口。
// 它位于领域层，由基础设施层实现。
type OrderRepository interface {
	// Create 持久化一个新订单（连同订单行），并回填存储分配的 ID 和初始版本号。
	Create(ctx context.Context, order *Order) error

	// FindByID 根据 ID 查找订单，不带订单行。
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindByIDWithItems 根据 ID 查找订单并带出全部订单行，
	// 避免投影时的懒加载惊喜。
	FindByIDWithItems(ctx context.Context, id int64) (*Order, error)

	// FindByCustomerName 读侧查询：按客户名查订单。
	FindByCustomerName(ctx context.Context, customerName string) ([]*Order, error)

	// FindByStatus 读侧查询：按状态查订单。
	FindByStatus(ctx context.Context, status Status) ([]*Order, error)

	// UpdateStatus 持久化状态变更。实现必须用 order.Version 做乐观并发检查：
	// 版本不匹配时返回 ErrVersionConflict，不允许覆盖并发写入。
	UpdateStatus(ctx context.Context, order *Order) error
}
