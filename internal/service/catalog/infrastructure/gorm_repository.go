// internal/service/catalog/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barista/internal/pkg/logger"
	"barista/internal/pkg/redis"
	"barista/internal/service/catalog/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormMenuRepository 是 MenuRepository 的 GORM 实现，
// 按 ID 的查询走 Redis 旁路缓存：菜单读多写少，点单高峰时每个订单行都要查一次菜单。
type GormMenuRepository struct {
	db       *gorm.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewGormMenuRepository 创建仓储实例。cache 传 nil 时退化为纯数据库访问。
func NewGormMenuRepository(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) *GormMenuRepository {
	return &GormMenuRepository{db: db, cache: cache, cacheTTL: cacheTTL}
}

func menuCacheKey(id int64) string {
	return fmt.Sprintf("catalog:menu:%d", id)
}

// Save 保存一个新菜单项并回填数据库分配的 ID
func (r *GormMenuRepository) Save(ctx context.Context, menu *domain.Menu) error {
	model := toMenuModel(menu)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.Wrap(err, "failed to save menu")
	}
	menu.ID = model.ID
	return nil
}

// FindByID 先查缓存再查库，未命中时回填缓存
func (r *GormMenuRepository) FindByID(ctx context.Context, id int64) (*domain.Menu, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, menuCacheKey(id)); err == nil {
			var menu domain.Menu
			if err := json.Unmarshal([]byte(raw), &menu); err == nil {
				return &menu, nil
			}
			// 缓存里的数据坏了就当未命中，顺手删掉
			_ = r.cache.Del(ctx, menuCacheKey(id))
		}
	}

	var model MenuModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, errors.Wrap(err, "failed to find menu")
	}

	menu := toDomainMenu(&model)
	if r.cache != nil {
		if raw, err := json.Marshal(menu); err == nil {
			if err := r.cache.Set(ctx, menuCacheKey(id), string(raw), r.cacheTTL); err != nil {
				logger.Ctx(ctx).Warn().Err(err).Int64("menu_id", id).Msg("failed to cache menu")
			}
		}
	}
	return menu, nil
}

// FindAvailable 返回所有上架菜单，列表查询不走缓存
func (r *GormMenuRepository) FindAvailable(ctx context.Context) ([]*domain.Menu, error) {
	var models []*MenuModel
	if err := r.db.WithContext(ctx).Where("available = ?", true).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available menus")
	}
	menus := make([]*domain.Menu, len(models))
	for i, m := range models {
		menus[i] = toDomainMenu(m)
	}
	return menus, nil
}

// UpdateAvailability 切换上下架状态，并让对应的缓存条目失效
func (r *GormMenuRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	res := r.db.WithContext(ctx).Model(&MenuModel{}).Where("id = ?", id).Update("available", available)
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update menu availability")
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuNotFound
	}
	if r.cache != nil {
		if err := r.cache.Del(ctx, menuCacheKey(id)); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Int64("menu_id", id).Msg("failed to invalidate menu cache")
		}
	}
	return nil
}
