// internal/service/order/domain/status.go
package domain

// Status 定义了订单的生命周期状态
type Status string

const (
	StatusPending   Status = "PENDING"   // 初始状态，订单已创建待确认
	StatusConfirmed Status = "CONFIRMED" // 商家已确认
	StatusPreparing Status = "PREPARING" // 制作中
	StatusCompleted Status = "COMPLETED" // 已完成（终态）
	StatusCancelled Status = "CANCELLED" // 已取消（终态）
)

// allowedTransitions 是状态机的转移表：每个状态只能流转到表里列出的目标状态。
// 终态（COMPLETED / CANCELLED）对应空集合，任何流转尝试都会被拒绝，
// 原地流转（PENDING -> PENDING 这种）同样不在任何集合里。
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo 判断能否从当前状态流转到 next。
// 纯函数，无副作用，流转规则的唯一出处。
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal 判断当前状态是否为终态
func (s Status) IsTerminal() bool {
	allowed, ok := allowedTransitions[s]
	return ok && len(allowed) == 0
}

// IsValid 判断是否为已知状态
func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// ParseStatus 把外部输入解析为 Status，未知取值返回 false。
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}
