// internal/service/order/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBlankCustomerName 客户名不能为空
	ErrBlankCustomerName = errors.New("customer name must not be blank")
	// ErrNoOrderItems 订单至少要有一个订单行
	ErrNoOrderItems = errors.New("order must contain at least one item")
	// ErrInvalidQuantity 数量必须为正整数
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrPriceOverflow 金额运算超出 int64 范围。快照价是最小货币单位，
	// 正常业务不可能触发，触发即拒绝而不是取饱和值。
	ErrPriceOverflow = errors.New("order total price overflows int64")
	// ErrVersionConflict 并发写冲突：另一个请求抢先修改了同一笔订单。
	// 调用方可以重新读取后重试。
	ErrVersionConflict = errors.New("order was modified by a concurrent update")
	// ErrNoAttachment 订单没有附件
	ErrNoAttachment = errors.New("order has no attachment")
)

// ItemNotFoundError 请求的菜单 ID 在目录中不存在
type ItemNotFoundError struct {
	MenuID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu %d does not exist", e.MenuID)
}

// ItemUnavailableError 菜单存在但已下架
type ItemUnavailableError struct {
	MenuName string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu %q is not available for ordering", e.MenuName)
}

// OrderNotFoundError 请求的订单不存在
type OrderNotFoundError struct {
	ID int64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}

// InvalidTransitionError 不允许的状态流转，带上当前状态和目标状态方便提示用户
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order status from %s to %s", e.From, e.To)
}

// StorageError 外部协作方（数据库、对象存储）的 I/O 失败
type StorageError struct {
	Op  string // 失败的操作，如 "order.create"、"blob.upload"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
