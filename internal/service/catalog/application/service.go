// internal/service/catalog/application/service.go
package application

import (
	"context"

	"barista/internal/service/catalog/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CatalogApplicationService 负责菜单目录的业务流程编排。
type CatalogApplicationService struct {
	menuRepo domain.MenuRepository
	tracer   trace.Tracer
}

func NewCatalogApplicationService(menuRepo domain.MenuRepository, tracer trace.Tracer) *CatalogApplicationService {
	return &CatalogApplicationService{menuRepo: menuRepo, tracer: tracer}
}

// CreateMenu 上架一个新菜单项。available 缺省时按上架处理。
func (s *CatalogApplicationService) CreateMenu(ctx context.Context, req *CreateMenuRequest) (*MenuResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.CreateMenu")
	defer span.End()

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	menu, err := domain.NewMenu(req.Name, req.Price, available)
	if err != nil {
		return nil, err
	}
	if err := s.menuRepo.Save(ctx, menu); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("menu.id", menu.ID))
	return FromMenu(menu), nil
}

// GetMenu 按 ID 查找菜单项，订单服务走这里拿快照数据。
func (s *CatalogApplicationService) GetMenu(ctx context.Context, id int64) (*domain.Menu, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.GetMenu")
	defer span.End()

	return s.menuRepo.FindByID(ctx, id)
}

// ListAvailable 返回所有可点的菜单项。
func (s *CatalogApplicationService) ListAvailable(ctx context.Context) ([]*MenuResponse, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.ListAvailable")
	defer span.End()

	menus, err := s.menuRepo.FindAvailable(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := make([]*MenuResponse, len(menus))
	for i, m := range menus {
		out[i] = FromMenu(m)
	}
	return out, nil
}

// SetAvailability 上架或下架一个菜单项。
// 只影响此后创建的订单，已有订单持有的是价格与名称的快照。
func (s *CatalogApplicationService) SetAvailability(ctx context.Context, id int64, available bool) error {
	ctx, span := s.tracer.Start(ctx, "catalog.SetAvailability")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("menu.id", id),
		attribute.Bool("menu.available", available),
	)
	return s.menuRepo.UpdateAvailability(ctx, id, available)
}
