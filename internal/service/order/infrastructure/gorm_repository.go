// internal/service/order/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"

	"barista/internal/service/order/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormOrderRepository 是 OrderRepository 的 GORM 实现。
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository 创建一个新的 GORM 仓储实例
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 在一个事务里写入订单和全部订单行，回填自增 ID。
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := toOrderModel(order)
	// GORM 会级联创建 Items 并填好外键
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return &domain.StorageError{Op: "order.create", Err: err}
	}
	order.ID = model.ID
	order.Version = model.Version
	return nil
}

// FindByID 根据 ID 查找订单，不带订单行
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var model OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.OrderNotFoundError{ID: id}
		}
		return nil, &domain.StorageError{Op: "order.find", Err: err}
	}
	return toDomainOrder(&model), nil
}

// FindByIDWithItems 根据 ID 查找订单并预加载订单行
func (r *GormOrderRepository) FindByIDWithItems(ctx context.Context, id int64) (*domain.Order, error) {
	var model OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.OrderNotFoundError{ID: id}
		}
		return nil, &domain.StorageError{Op: "order.find_with_items", Err: err}
	}
	return toDomainOrder(&model), nil
}

// FindByCustomerName 按客户名查询订单（含订单行）
func (r *GormOrderRepository) FindByCustomerName(ctx context.Context, customerName string) ([]*domain.Order, error) {
	var models []*OrderModel
	err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_name = ?", customerName).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "order.find_by_customer", Err: err}
	}
	return toDomainOrders(models), nil
}

// FindByStatus 按状态查询订单（含订单行）
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Order, error) {
	var models []*OrderModel
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ?", string(status)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "order.find_by_status", Err: err}
	}
	return toDomainOrders(models), nil
}

// UpdateStatus 用乐观锁写回状态变更：
// UPDATE 带上读取时的版本号做条件，没更新到行说明要么订单没了、
// 要么版本被并发写抬升了——后者返回 ErrVersionConflict 让调用方重试。
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, order *domain.Order) error {
	res := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]interface{}{
			"status":  string(order.Status),
			"version": order.Version + 1,
		})
	if res.Error != nil {
		return &domain.StorageError{Op: "order.update_status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderModel{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return &domain.StorageError{Op: "order.update_status", Err: err}
		}
		if count == 0 {
			return &domain.OrderNotFoundError{ID: order.ID}
		}
		return domain.ErrVersionConflict
	}
	order.Version++
	return nil
}

func toDomainOrders(models []*OrderModel) []*domain.Order {
	orders := make([]*domain.Order, len(models))
	for i, m := range models {
		orders[i] = toDomainOrder(m)
	}
	return orders
}
