// internal/service/order/infrastructure/models.go
package infrastructure

import (
	"database/sql"
	"time"
)

// OrderModel 对应数据库中的 orders 表
type OrderModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CustomerName  string `gorm:"type:varchar(255);not null;index"`
	Status        string `gorm:"type:varchar(16);not null;index"`
	TotalPrice    int64  `gorm:"not null"`
	AttachmentKey sql.NullString
	Version       int64            `gorm:"not null;default:0"`
	OrderedAt     time.Time        `gorm:"not null"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName 指定 GORM 应该使用的表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 对应数据库中的 order_items 表。
// menu_name / menu_price 是下单时的快照列，不关联 menus 表的实时值。
type OrderItemModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"not null;index"`
	MenuID    int64  `gorm:"not null"`
	MenuName  string `gorm:"type:varchar(255);not null"`
	MenuPrice int64  `gorm:"not null"`
	Quantity  int32  `gorm:"not null"`
}

// TableName 指定 GORM 应该使用的表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
