package domain

import (
	"math"
	"testing"

	catalog "barista/internal/service/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func americano() *catalog.Menu {
	return &catalog.Menu{ID: 1, Name: "americano", Price: 1000, Available: true}
}

func latte() *catalog.Menu {
	return &catalog.Menu{ID: 2, Name: "라떼", Price: 4500, Available: true}
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder("김춘식")
	require.NoError(t, err)

	assert.Equal(t, "김춘식", order.CustomerName)
	assert.Equal(t, StatusPending, order.Status)
	assert.Empty(t, order.Items)
	assert.Zero(t, order.TotalPrice)
	assert.False(t, order.OrderedAt.IsZero())
}

func TestNewOrderRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewOrder(name)
		assert.ErrorIs(t, err, ErrBlankCustomerName)
	}
}

func TestAddItemAccumulatesTotal(t *testing.T) {
	order, err := NewOrder("김춘식")
	require.NoError(t, err)

	require.NoError(t, order.AddItem(americano(), 3))
	assert.Equal(t, int64(3000), order.TotalPrice)

	require.NoError(t, order.AddItem(latte(), 2))
	assert.Equal(t, int64(12000), order.TotalPrice)

	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(3000), order.Items[0].Subtotal())
	assert.Equal(t, int64(9000), order.Items[1].Subtotal())
}

// 不变式：不管按什么顺序添加，总价都等于各行小计之和。
func TestTotalIsOrderIndependent(t *testing.T) {
	a, _ := NewOrder("a")
	require.NoError(t, a.AddItem(americano(), 3))
	require.NoError(t, a.AddItem(latte(), 2))

	b, _ := NewOrder("b")
	require.NoError(t, b.AddItem(latte(), 2))
	require.NoError(t, b.AddItem(americano(), 3))

	assert.Equal(t, a.TotalPrice, b.TotalPrice)

	var sum int64
	for _, li := range a.Items {
		sum += li.Subtotal()
	}
	assert.Equal(t, sum, a.TotalPrice)
}

// 订单行快照的是添加时的名称和价格，之后改菜单不影响已有订单。
func TestLineItemSnapshotsMenuValues(t *testing.T) {
	order, _ := NewOrder("김춘식")
	menu := americano()
	require.NoError(t, order.AddItem(menu, 1))

	menu.Name = "double shot americano"
	menu.Price = 2000
	menu.Available = false

	assert.Equal(t, "americano", order.Items[0].MenuName)
	assert.Equal(t, int64(1000), order.Items[0].MenuPrice)
	assert.Equal(t, int64(1000), order.TotalPrice)
}

func TestAddItemRejectsUnavailableMenu(t *testing.T) {
	order, _ := NewOrder("김춘식")
	menu := americano()
	menu.Available = false

	err := order.AddItem(menu, 1)
	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "americano", unavailable.MenuName)
	assert.Empty(t, order.Items)
	assert.Zero(t, order.TotalPrice)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	order, _ := NewOrder("김춘식")
	assert.ErrorIs(t, order.AddItem(americano(), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, order.AddItem(americano(), -1), ErrInvalidQuantity)
	assert.Empty(t, order.Items)
}

// 金额溢出必须报错，失败时订单保持原样。
func TestAddItemRejectsPriceOverflow(t *testing.T) {
	order, _ := NewOrder("김춘식")
	pricey := &catalog.Menu{ID: 3, Name: "golden latte", Price: math.MaxInt64, Available: true}

	assert.ErrorIs(t, order.AddItem(pricey, 2), ErrPriceOverflow)
	assert.Empty(t, order.Items)
	assert.Zero(t, order.TotalPrice)

	// 单行不溢出但累加后溢出，同样拒绝
	require.NoError(t, order.AddItem(pricey, 1))
	assert.ErrorIs(t, order.AddItem(americano(), 1), ErrPriceOverflow)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(math.MaxInt64), order.TotalPrice)
}

func TestTransitionTo(t *testing.T) {
	order, _ := NewOrder("김춘식")

	require.NoError(t, order.TransitionTo(StatusConfirmed))
	require.NoError(t, order.TransitionTo(StatusPreparing))
	require.NoError(t, order.TransitionTo(StatusCompleted))
	assert.Equal(t, StatusCompleted, order.Status)
}

// 流转被拒绝时状态必须保持不变。
func TestTransitionToRejectedLeavesStatusUntouched(t *testing.T) {
	order, _ := NewOrder("김춘식")

	err := order.TransitionTo(StatusCompleted)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusPending, invalid.From)
	assert.Equal(t, StatusCompleted, invalid.To)
	assert.Equal(t, StatusPending, order.Status)
}

func TestTransitionFromTerminalStateAlwaysFails(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		order, _ := NewOrder("김춘식")
		order.Status = terminal

		for _, next := range []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled} {
			var invalid *InvalidTransitionError
			assert.ErrorAsf(t, order.TransitionTo(next), &invalid, "%s -> %s must fail", terminal, next)
			assert.Equal(t, terminal, order.Status)
		}
	}
}
