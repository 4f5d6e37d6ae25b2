package handler

import (
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
)

// Page страница списка
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func PageToJSON[E, T any](p entities.Page[E], convert func(E) T) Page[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, convert(it))
	}
	return Page[T]{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages}
}

// DeliveryAddress адрес доставки заказа
type DeliveryAddress struct {
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	Province    string `json:"province" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

// Order представляет заказ
type Order struct {
	ID                 string           `json:"id"`
	OrderNumber        string           `json:"order_number"`
	ProductID          string           `json:"product_id"`
	BuyerID            string           `json:"buyer_id"`
	SellerID           string           `json:"seller_id"`
	Quantity           int              `json:"quantity"`
	TotalAmount        int64            `json:"total_amount"`
	DeliveryMethod     string           `json:"delivery_method"`
	PaymentMethod      string           `json:"payment_method"`
	DeliveryAddress    *DeliveryAddress `json:"delivery_address,omitempty"`
	Message            string           `json:"message,omitempty"`
	Status             string           `json:"status"`
	PaymentStatus      string           `json:"payment_status"`
	PaymentReference   string           `json:"payment_reference,omitempty"`
	Notes              string           `json:"notes,omitempty"`
	CancelledBy        string           `json:"cancelled_by,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	DeliveredAt        *time.Time       `json:"delivered_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CreateOrderRequest запрос на создание заказа
type CreateOrderRequest struct {
	ProductID       string           `json:"product_id" validate:"required,uuid"`
	Quantity        int              `json:"quantity" validate:"omitempty,min=1,max=1000"`
	DeliveryMethod  string           `json:"delivery_method" validate:"required,oneof=delivery pickup"`
	PaymentMethod   string           `json:"payment_method" validate:"required,oneof=cod paynow ecocash"`
	DeliveryAddress *DeliveryAddress `json:"delivery_address" validate:"required_if=DeliveryMethod delivery,omitempty"`
	Message         string           `json:"message" validate:"max=500"`
}

// UpdateStatusRequest запрос на смену статуса заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled completed"`
	Notes  string `json:"notes" validate:"max=500"`
}

// CancelOrderRequest запрос на отмену заказа
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// UpdatePaymentRequest запрос на смену статуса оплаты
type UpdatePaymentRequest struct {
	PaymentStatus    string `json:"payment_status" validate:"required,oneof=pending paid failed refunded"`
	PaymentReference string `json:"payment_reference" validate:"max=100"`
}

// PaymentConfirmation сообщение платежного провайдера из Kafka
type PaymentConfirmation struct {
	OrderID   string `json:"order_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=paid failed refunded"`
	Reference string `json:"reference" validate:"required,max=100"`
}

// StatusStats количество и сумма заказов в статусе
type StatusStats struct {
	Count       int   `json:"count"`
	TotalAmount int64 `json:"total_amount"`
}

func DeliveryAddressToJSON(a *entities.DeliveryAddress) *DeliveryAddress {
	if a == nil {
		return nil
	}
	return &DeliveryAddress{
		Street:      a.Street,
		City:        a.City,
		Province:    a.Province,
		PhoneNumber: a.PhoneNumber,
	}
}

func DeliveryAddressToEntity(a *DeliveryAddress) *entities.DeliveryAddress {
	if a == nil {
		return nil
	}
	return &entities.DeliveryAddress{
		Street:      a.Street,
		City:        a.City,
		Province:    a.Province,
		PhoneNumber: a.PhoneNumber,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		ProductID:          o.ProductID,
		BuyerID:            o.BuyerID,
		SellerID:           o.SellerID,
		Quantity:           o.Quantity,
		TotalAmount:        o.TotalAmount,
		DeliveryMethod:     string(o.DeliveryMethod),
		PaymentMethod:      string(o.PaymentMethod),
		DeliveryAddress:    DeliveryAddressToJSON(o.DeliveryAddress),
		Message:            o.Message,
		Status:             string(o.Status),
		PaymentStatus:      string(o.PaymentStatus),
		PaymentReference:   o.PaymentReference,
		Notes:              o.Notes,
		CancelledBy:        o.CancelledBy,
		CancellationReason: o.CancellationReason,
		DeliveredAt:        o.DeliveredAt,
		CompletedAt:        o.CompletedAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func CreateOrderJSONToEntity(r CreateOrderRequest) entities.CreateOrderInput {
	in := entities.CreateOrderInput{
		ProductID:      r.ProductID,
		Quantity:       max(r.Quantity, 1),
		DeliveryMethod: entities.DeliveryMethod(r.DeliveryMethod),
		PaymentMethod:  entities.PaymentMethod(r.PaymentMethod),
		Message:        r.Message,
	}
	// адрес нужен только для доставки
	if in.DeliveryMethod == entities.DeliveryMethodDelivery {
		in.DeliveryAddress = DeliveryAddressToEntity(r.DeliveryAddress)
	}
	return in
}

func OrderStatsToJSON(stats entities.OrderStats) map[string]StatusStats {
	res := make(map[string]StatusStats, len(stats))
	for status, s := range stats {
		res[string(status)] = StatusStats{Count: s.Count, TotalAmount: s.TotalAmount}
	}
	return res
}

// Location местоположение товара или пользователя
type Location struct {
	City     string `json:"city" validate:"required"`
	Province string `json:"province" validate:"required"`
	Address  string `json:"address,omitempty"`
}

// Product представляет объявление о товаре
type Product struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Price           int64      `json:"price"`
	Condition       string     `json:"condition"`
	Images          []string   `json:"images"`
	SellerID        string     `json:"seller_id"`
	Location        Location   `json:"location"`
	DeliveryOptions []string   `json:"delivery_options"`
	Negotiable      bool       `json:"negotiable"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	Views           int        `json:"views"`
	SoldAt          *time.Time `json:"sold_at,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateProductRequest запрос на создание объявления
type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"required,min=10,max=2000"`
	Category        string   `json:"category" validate:"required,oneof=electronics fashion home automotive books sports beauty agriculture services other"`
	Price           int64    `json:"price" validate:"gte=0"`
	Condition       string   `json:"condition" validate:"required,oneof=new used refurbished"`
	Images          []string `json:"images" validate:"required,min=1,max=5,dive,url"`
	Location        Location `json:"location" validate:"required"`
	DeliveryOptions []string `json:"delivery_options" validate:"dive,oneof=delivery pickup both"`
	Negotiable      bool     `json:"negotiable"`
}

// UpdateProductRequest частичное обновление объявления
type UpdateProductRequest struct {
	Name            *string   `json:"name" validate:"omitempty,min=3,max=200"`
	Description     *string   `json:"description" validate:"omitempty,min=10,max=2000"`
	Category        *string   `json:"category" validate:"omitempty,oneof=electronics fashion home automotive books sports beauty agriculture services other"`
	Price           *int64    `json:"price" validate:"omitempty,gte=0"`
	Condition       *string   `json:"condition" validate:"omitempty,oneof=new used refurbished"`
	Images          []string  `json:"images" validate:"omitempty,min=1,max=5,dive,url"`
	Location        *Location `json:"location"`
	DeliveryOptions []string  `json:"delivery_options" validate:"omitempty,dive,oneof=delivery pickup both"`
	Negotiable      *bool     `json:"negotiable"`
}

// RejectProductRequest причина отклонения объявления
type RejectProductRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

func ProductStatsToJSON(stats entities.ProductStats) map[string]int {
	res := make(map[string]int, len(stats))
	for status, count := range stats {
		res[string(status)] = count
	}
	return res
}

func LocationToJSON(l entities.Location) Location {
	return Location{City: l.City, Province: l.Province, Address: l.Address}
}

func LocationToEntity(l Location) entities.Location {
	return entities.Location{City: l.City, Province: l.Province, Address: l.Address}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Price:           p.Price,
		Condition:       p.Condition,
		Images:          nonNil(p.Images),
		SellerID:        p.SellerID,
		Location:        LocationToJSON(p.Location),
		DeliveryOptions: nonNil(p.DeliveryOptions),
		Negotiable:      p.Negotiable,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		Views:           p.Views,
		SoldAt:          p.SoldAt,
		ApprovedAt:      p.ApprovedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func CreateProductJSONToEntity(r CreateProductRequest) entities.Product {
	return entities.Product{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		Condition:       r.Condition,
		Images:          r.Images,
		Location:        LocationToEntity(r.Location),
		DeliveryOptions: r.DeliveryOptions,
		Negotiable:      r.Negotiable,
	}
}

func UpdateProductJSONToEntity(r UpdateProductRequest) entities.ProductUpdate {
	upd := entities.ProductUpdate{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		Condition:       r.Condition,
		Images:          r.Images,
		DeliveryOptions: r.DeliveryOptions,
		Negotiable:      r.Negotiable,
	}
	if r.Location != nil {
		loc := LocationToEntity(*r.Location)
		upd.Location = &loc
	}
	return upd
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Rating средняя оценка продавца
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// User профиль пользователя без пароля
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	PhoneNumber   string     `json:"phone_number"`
	UserType      string     `json:"user_type"`
	Location      Location   `json:"location"`
	EcocashNumber string     `json:"ecocash_number,omitempty"`
	PhoneVerified bool       `json:"phone_verified"`
	Rating        Rating     `json:"rating"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	IsSuspended      bool   `json:"is_suspended"`
	SuspensionReason string `json:"suspension_reason,omitempty"`
}

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8,max=72"`
	FirstName     string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName      string   `json:"last_name" validate:"required,min=2,max=50"`
	PhoneNumber   string   `json:"phone_number" validate:"required,phone"`
	UserType      string   `json:"user_type" validate:"required,oneof=buyer seller"`
	Location      Location `json:"location" validate:"required"`
	EcocashNumber string   `json:"ecocash_number" validate:"omitempty,phone"`
	NationalID    string   `json:"national_id" validate:"max=30"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse токен и профиль пользователя
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest частичное обновление профиля
type UpdateProfileRequest struct {
	FirstName     *string   `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName      *string   `json:"last_name" validate:"omitempty,min=2,max=50"`
	PhoneNumber   *string   `json:"phone_number" validate:"omitempty,phone"`
	Location      *Location `json:"location"`
	EcocashNumber *string   `json:"ecocash_number" validate:"omitempty,phone"`
	NationalID    *string   `json:"national_id" validate:"omitempty,max=30"`
}

// SuspendUserRequest причина блокировки
type SuspendUserRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// VerifyPhoneRequest код из SMS
type VerifyPhoneRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		PhoneNumber:   u.PhoneNumber,
		UserType:      string(u.UserType),
		Location:      LocationToJSON(u.Location),
		EcocashNumber: u.EcocashNumber,
		PhoneVerified: u.PhoneVerified,
		Rating:        Rating{Average: u.Rating.Average, Count: u.Rating.Count},
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,

		IsSuspended:      u.IsSuspended,
		SuspensionReason: u.SuspensionReason,
	}
}

func UpdateProfileJSONToEntity(r UpdateProfileRequest) entities.ProfileUpdate {
	upd := entities.ProfileUpdate{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		PhoneNumber:   r.PhoneNumber,
		EcocashNumber: r.EcocashNumber,
		NationalID:    r.NationalID,
	}
	if r.Location != nil {
		loc := LocationToEntity(*r.Location)
		upd.Location = &loc
	}
	return upd
}

func RegisterJSONToEntity(r RegisterRequest) entities.RegisterInput {
	return entities.RegisterInput{
		Email:         r.Email,
		Password:      r.Password,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		PhoneNumber:   r.PhoneNumber,
		UserType:      entities.UserType(r.UserType),
		Location:      LocationToEntity(r.Location),
		EcocashNumber: r.EcocashNumber,
		NationalID:    r.NationalID,
	}
}

// Review отзыв покупателя о продавце
type Review struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ReviewerID string    `json:"reviewer_id"`
	ReviewedID string    `json:"reviewed_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10,max=500"`
}

func ReviewEntityToJSON(r entities.Review) Review {
	return Review{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ReviewerID: r.ReviewerID,
		ReviewedID: r.ReviewedID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
