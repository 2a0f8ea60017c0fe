// internal/service/catalog/infrastructure/models.go
package infrastructure

// MenuModel 对应数据库中的 menus 表
type MenuModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Price     int64  `gorm:"not null"`
	Available bool   `gorm:"not null;default:true;index"`
}

// TableName 指定 GORM 应该使用的表名
func (MenuModel) TableName() string {
	return "menus"
}
