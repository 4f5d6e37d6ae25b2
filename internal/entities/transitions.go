package entities

// transitions для текущего статуса и роли перечисляет статусы, в которые
// эта роль может перевести заказ. У финальных статусов записей нет.
var transitions = map[OrderStatus]map[Role][]OrderStatus{
	OrderStatusPending: {
		RoleSeller: {OrderStatusConfirmed, OrderStatusCancelled},
		RoleBuyer:  {OrderStatusCancelled},
	},
	OrderStatusConfirmed: {
		RoleSeller: {OrderStatusShipped, OrderStatusCancelled},
		RoleBuyer:  {OrderStatusCancelled},
	},
	OrderStatusShipped: {
		RoleSeller: {OrderStatusDelivered, OrderStatusCancelled},
		RoleBuyer:  {OrderStatusCancelled},
	},
	OrderStatusDelivered: {
		RoleBuyer: {OrderStatusCompleted},
	},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusCompleted
}

// CanTransition проверяет, может ли роль перевести заказ из from в to.
func CanTransition(from OrderStatus, role Role, to OrderStatus) bool {
	for _, next := range transitions[from][role] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses статусы, доступные роли из текущего.
func NextStatuses(from OrderStatus, role Role) []OrderStatus {
	next := transitions[from][role]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}
