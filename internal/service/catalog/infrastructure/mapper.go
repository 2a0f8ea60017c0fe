// internal/service/catalog/infrastructure/mapper.go
package infrastructure

import "barista/internal/service/catalog/domain"

func toDomainMenu(m *MenuModel) *domain.Menu {
	return &domain.Menu{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Available: m.Available,
	}
}

func toMenuModel(m *domain.Menu) *MenuModel {
	return &MenuModel{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Available: m.Available,
	}
}
