// internal/service/order/infrastructure/adapter/catalog_local_adapter.go
package adapter

import (
	"context"

	catalogapp "barista/internal/service/catalog/application"
	catalogdomain "barista/internal/service/catalog/domain"
)

// CatalogLocalAdapter 是 port.Catalog 的进程内实现。
// 订单和目录跑在同一个进程里，直接调目录的应用服务，没有网络开销。
type CatalogLocalAdapter struct {
	service *catalogapp.CatalogApplicationService
}

func NewCatalogLocalAdapter(service *catalogapp.CatalogApplicationService) *CatalogLocalAdapter {
	return &CatalogLocalAdapter{service: service}
}

func (a *CatalogLocalAdapter) FindMenuByID(ctx context.Context, menuID int64) (*catalogdomain.Menu, error) {
	return a.service.GetMenu(ctx, menuID)
}
