package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodPaynow  PaymentMethod = "paynow"
	PaymentMethodEcocash PaymentMethod = "ecocash"
)

type DeliveryAddress struct {
	Street      string
	City        string
	Province    string
	PhoneNumber string
}

type Order struct {
	ID          string
	OrderNumber string

	// Ссылки задаются один раз при создании и больше не меняются
	ProductID string
	BuyerID   string
	SellerID  string

	Quantity        int
	TotalAmount     int64
	DeliveryMethod  DeliveryMethod
	PaymentMethod   PaymentMethod
	DeliveryAddress *DeliveryAddress
	Message         string

	Status             OrderStatus
	PaymentStatus      PaymentStatus
	PaymentReference   string
	Notes              string
	CancelledBy        string
	CancellationReason string

	DeliveredAt *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Role отношение пользователя к конкретному заказу. Не хранится в базе.
type Role int

const (
	RoleNone Role = iota
	RoleBuyer
	RoleSeller
)

func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	default:
		return "none"
	}
}

// RoleOf определяет роль пользователя по участникам заказа.
func (o Order) RoleOf(userID string) Role {
	switch userID {
	case "":
		return RoleNone
	case o.SellerID:
		return RoleSeller
	case o.BuyerID:
		return RoleBuyer
	default:
		return RoleNone
	}
}

// CreateOrderInput данные, которые покупатель передает при оформлении заказа.
type CreateOrderInput struct {
	ProductID       string
	Quantity        int
	DeliveryMethod  DeliveryMethod
	PaymentMethod   PaymentMethod
	DeliveryAddress *DeliveryAddress
	Message         string
}

// StatusChange условная смена статуса.
// Применяется, только если заказ все еще в статусе From.
type StatusChange struct {
	From  OrderStatus
	To    OrderStatus
	Notes string
	At    time.Time
}

type StatusStats struct {
	Count       int
	TotalAmount int64
}

type OrderStats map[OrderStatus]StatusStats

type OrderFilter struct {
	BuyerID  string
	SellerID string
	Status   OrderStatus
}
