// internal/service/catalog/application/dto.go
package application

import "barista/internal/service/catalog/domain"

// CreateMenuRequest 是创建菜单用例的输入数据
type CreateMenuRequest struct {
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available *bool  `json:"available"` // 不传时默认上架
}

// MenuResponse 是菜单项的对外投影
type MenuResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

func FromMenu(m *domain.Menu) *MenuResponse {
	return &MenuResponse{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Available: m.Available,
	}
}
