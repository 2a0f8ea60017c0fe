package application

import (
	"context"
	"testing"

	"barista/internal/service/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

type fakeMenuRepo struct {
	menus  map[int64]*domain.Menu
	nextID int64
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{menus: make(map[int64]*domain.Menu)}
}

func (f *fakeMenuRepo) Save(_ context.Context, menu *domain.Menu) error {
	f.nextID++
	menu.ID = f.nextID
	cp := *menu
	f.menus[menu.ID] = &cp
	return nil
}

func (f *fakeMenuRepo) FindByID(_ context.Context, id int64) (*domain.Menu, error) {
	m, ok := f.menus[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMenuRepo) FindAvailable(_ context.Context) ([]*domain.Menu, error) {
	var out []*domain.Menu
	for _, m := range f.menus {
		if m.Available {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) UpdateAvailability(_ context.Context, id int64, available bool) error {
	m, ok := f.menus[id]
	if !ok {
		return domain.ErrMenuNotFound
	}
	m.Available = available
	return nil
}

func newService() (*CatalogApplicationService, *fakeMenuRepo) {
	repo := newFakeMenuRepo()
	return NewCatalogApplicationService(repo, otel.Tracer("test")), repo
}

func TestCreateMenuDefaultsToAvailable(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.CreateMenu(context.Background(), &CreateMenuRequest{Name: "americano", Price: 1000})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "americano", resp.Name)
	assert.Equal(t, int64(1000), resp.Price)
	assert.True(t, resp.Available, "availability defaults to true")
}

func TestCreateMenuExplicitlyUnavailable(t *testing.T) {
	svc, _ := newService()
	unavailable := false

	resp, err := svc.CreateMenu(context.Background(), &CreateMenuRequest{
		Name: "seasonal latte", Price: 5500, Available: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestCreateMenuValidation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.CreateMenu(ctx, &CreateMenuRequest{Name: "  ", Price: 1000})
	assert.ErrorIs(t, err, domain.ErrBlankMenuName)

	_, err = svc.CreateMenu(ctx, &CreateMenuRequest{Name: "americano", Price: -1})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestGetMenu(t *testing.T) {
	svc, _ := newService()
	created, err := svc.CreateMenu(context.Background(), &CreateMenuRequest{Name: "라떼", Price: 4500})
	require.NoError(t, err)

	menu, err := svc.GetMenu(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "라떼", menu.Name)
	assert.Equal(t, int64(4500), menu.Price)

	_, err = svc.GetMenu(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestListAvailableFiltersUnavailable(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	first, err := svc.CreateMenu(ctx, &CreateMenuRequest{Name: "americano", Price: 1000})
	require.NoError(t, err)
	_, err = svc.CreateMenu(ctx, &CreateMenuRequest{Name: "라떼", Price: 4500})
	require.NoError(t, err)

	require.NoError(t, svc.SetAvailability(ctx, first.ID, false))

	menus, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "라떼", menus[0].Name)
}

func TestSetAvailabilityNotFound(t *testing.T) {
	svc, _ := newService()
	assert.ErrorIs(t, svc.SetAvailability(context.Background(), 999, true), domain.ErrMenuNotFound)
}
