// internal/service/order/domain/order.go
package domain

import (
	"math"
	"strings"
	"time"

	catalog "barista/internal/service/catalog/domain"
)

// LineItem 是订单里的一个订单行。
// MenuName 和 MenuPrice 是下单时从菜单快照过来的值：之后菜单改价、下架
// 都不会回溯影响已有订单。MenuID 只用于追溯来源。
// 订单行只能通过 Order.AddItem 创建，创建后不再修改，随订单一起销毁。
type LineItem struct {
	MenuID    int64
	MenuName  string
	MenuPrice int64 // 最小货币单位的快照单价
	Quantity  int32
}

// Subtotal 返回该订单行的小计
func (li LineItem) Subtotal() int64 {
	return li.MenuPrice * int64(li.Quantity)
}

// Order 是订单聚合的根实体。
// TotalPrice 是派生值，随 AddItem 增量维护，外部不允许直接改写；
// 不变式：TotalPrice 恒等于所有订单行小计之和。
// Items 保持插入顺序，这是展示顺序，业务逻辑不依赖它。
type Order struct {
	ID            int64
	CustomerName  string
	Status        Status
	Items         []LineItem
	TotalPrice    int64
	AttachmentKey string // 对象存储里的附件 Key，可为空
	Version       int64  // 乐观锁版本号，由存储层维护
	OrderedAt     time.Time
}

// NewOrder 创建一个新订单：PENDING 状态、空订单行、零总价。
// 下单时间在这里定格，之后不再变化。
func NewOrder(customerName string) (*Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrBlankCustomerName
	}
	return &Order{
		CustomerName: customerName,
		Status:       StatusPending,
		Items:        []LineItem{},
		TotalPrice:   0,
		OrderedAt:    time.Now(),
	}, nil
}

// AddItem 把一个菜单项按指定数量加进订单，快照菜单当前的名称和价格，
// 并把小计累加进总价。只在订单组装阶段（持久化之前）调用；
// 订单一旦入库，本聚合不再提供追加订单行的入口。
func (o *Order) AddItem(menu *catalog.Menu, quantity int32) error {
	// 数量校验由接口层负责，这里再防御一次
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !menu.Available {
		return &ItemUnavailableError{MenuName: menu.Name}
	}

	subtotal, ok := mulNonNegative(menu.Price, int64(quantity))
	if !ok || o.TotalPrice > math.MaxInt64-subtotal {
		return ErrPriceOverflow
	}

	o.Items = append(o.Items, LineItem{
		MenuID:    menu.ID,
		MenuName:  menu.Name,
		MenuPrice: menu.Price,
		Quantity:  quantity,
	})
	o.TotalPrice += subtotal
	return nil
}

// TransitionTo 把订单状态流转到 next。
// 校验和赋值是一个不可分的逻辑操作：校验失败直接返回错误，状态不变；
// 校验通过只替换状态字段，不动其它字段。
func (o *Order) TransitionTo(next Status) error {
	if !o.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	return nil
}

// mulNonNegative 计算 a*b 并检测 int64 溢出，a、b 均为非负数。
func mulNonNegative(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/a != b {
		return 0, false
	}
	return r, true
}
