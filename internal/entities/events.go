package entities

import "time"

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
	OrderEventPaymentUpdate = "order.payment_updated"
)

type OrderEvent struct {
	Type           string
	OrderID        string
	OrderNumber    string
	ProductID      string
	BuyerID        string
	SellerID       string
	PreviousStatus OrderStatus
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	ActorID        string
	OccurredAt     time.Time
}

type SMS struct {
	To   string
	Body string
}

// ProductSoldTask задача пометить товар проданным после завершения заказа.
type ProductSoldTask struct {
	ProductID string
	OrderID   string
	CreatedAt time.Time
}

// PaymentConfirmation уведомление от платежного провайдера.
type PaymentConfirmation struct {
	OrderID   string
	Status    PaymentStatus
	Reference string
}
