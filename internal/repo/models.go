package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	"github.com/lib/pq"
)

type Order struct {
	ID                 string         `db:"id"`
	OrderNumber        string         `db:"order_number"`
	ProductID          string         `db:"product_id"`
	BuyerID            string         `db:"buyer_id"`
	SellerID           string         `db:"seller_id"`
	Quantity           int            `db:"quantity"`
	TotalAmount        int64          `db:"total_amount"`
	DeliveryMethod     string         `db:"delivery_method"`
	PaymentMethod      string         `db:"payment_method"`
	DeliveryStreet     sql.NullString `db:"delivery_street"`
	DeliveryCity       sql.NullString `db:"delivery_city"`
	DeliveryProvince   sql.NullString `db:"delivery_province"`
	DeliveryPhone      sql.NullString `db:"delivery_phone"`
	Message            sql.NullString `db:"message"`
	Status             string         `db:"status"`
	PaymentStatus      string         `db:"payment_status"`
	PaymentReference   sql.NullString `db:"payment_reference"`
	Notes              sql.NullString `db:"notes"`
	CancelledBy        sql.NullString `db:"cancelled_by"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	DeliveredAt        sql.NullTime   `db:"delivered_at"`
	CompletedAt        sql.NullTime   `db:"completed_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

var orderColumns = []string{
	"id", "order_number", "product_id", "buyer_id", "seller_id", "quantity", "total_amount",
	"delivery_method", "payment_method", "delivery_street", "delivery_city", "delivery_province",
	"delivery_phone", "message", "status", "payment_status", "payment_reference", "notes",
	"cancelled_by", "cancellation_reason", "delivered_at", "completed_at", "created_at", "updated_at",
}

type Product struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Category        string         `db:"category"`
	Price           int64          `db:"price"`
	Condition       string         `db:"condition"`
	Images          pq.StringArray `db:"images"`
	SellerID        string         `db:"seller_id"`
	City            string         `db:"city"`
	Province        string         `db:"province"`
	Address         sql.NullString `db:"address"`
	DeliveryOptions pq.StringArray `db:"delivery_options"`
	Negotiable      bool           `db:"negotiable"`
	Status          string         `db:"status"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	Views           int            `db:"views"`
	IsActive        bool           `db:"is_active"`
	SoldAt          sql.NullTime   `db:"sold_at"`
	ApprovedAt      sql.NullTime   `db:"approved_at"`
	ApprovedBy      sql.NullString `db:"approved_by"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

var productColumns = []string{
	"id", "name", "description", "category", "price", "condition", "images", "seller_id",
	"city", "province", "address", "delivery_options", "negotiable", "status", "rejection_reason",
	"views", "is_active", "sold_at", "approved_at", "approved_by", "created_at", "updated_at",
}

type User struct {
	ID               string         `db:"id"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	FirstName        string         `db:"first_name"`
	LastName         string         `db:"last_name"`
	PhoneNumber      string         `db:"phone_number"`
	UserType         string         `db:"user_type"`
	City             string         `db:"city"`
	Province         string         `db:"province"`
	Address          sql.NullString `db:"address"`
	EcocashNumber    sql.NullString `db:"ecocash_number"`
	NationalID       sql.NullString `db:"national_id"`
	PhoneVerified    bool           `db:"phone_verified"`
	IsActive         bool           `db:"is_active"`
	IsSuspended      bool           `db:"is_suspended"`
	SuspensionReason sql.NullString `db:"suspension_reason"`
	RatingAverage    float64        `db:"rating_average"`
	RatingCount      int            `db:"rating_count"`
	LastLogin        sql.NullTime   `db:"last_login"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "phone_number", "user_type",
	"city", "province", "address", "ecocash_number", "national_id", "phone_verified", "is_active",
	"is_suspended", "suspension_reason", "rating_average", "rating_count", "last_login",
	"created_at", "updated_at",
}

type Review struct {
	ID         string    `db:"id"`
	OrderID    string    `db:"order_id"`
	ReviewerID string    `db:"reviewer_id"`
	ReviewedID string    `db:"reviewed_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
}

var reviewColumns = []string{
	"id", "order_id", "reviewer_id", "reviewed_id", "rating", "comment", "is_active", "created_at",
}

func OrderToEntity(o Order) entities.Order {
	order := entities.Order{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		ProductID:          o.ProductID,
		BuyerID:            o.BuyerID,
		SellerID:           o.SellerID,
		Quantity:           o.Quantity,
		TotalAmount:        o.TotalAmount,
		DeliveryMethod:     entities.DeliveryMethod(o.DeliveryMethod),
		PaymentMethod:      entities.PaymentMethod(o.PaymentMethod),
		Message:            nullStringToString(o.Message),
		Status:             entities.OrderStatus(o.Status),
		PaymentStatus:      entities.PaymentStatus(o.PaymentStatus),
		PaymentReference:   nullStringToString(o.PaymentReference),
		Notes:              nullStringToString(o.Notes),
		CancelledBy:        nullStringToString(o.CancelledBy),
		CancellationReason: nullStringToString(o.CancellationReason),
		DeliveredAt:        nullTimeToPtr(o.DeliveredAt),
		CompletedAt:        nullTimeToPtr(o.CompletedAt),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	// адрес хранится только для доставки курьером
	if o.DeliveryStreet.Valid || o.DeliveryCity.Valid {
		order.DeliveryAddress = &entities.DeliveryAddress{
			Street:      nullStringToString(o.DeliveryStreet),
			City:        nullStringToString(o.DeliveryCity),
			Province:    nullStringToString(o.DeliveryProvince),
			PhoneNumber: nullStringToString(o.DeliveryPhone),
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Condition:   p.Condition,
		Images:      []string(p.Images),
		SellerID:    p.SellerID,
		Location: entities.Location{
			City:     p.City,
			Province: p.Province,
			Address:  nullStringToString(p.Address),
		},
		DeliveryOptions: []string(p.DeliveryOptions),
		Negotiable:      p.Negotiable,
		Status:          entities.ProductStatus(p.Status),
		RejectionReason: nullStringToString(p.RejectionReason),
		Views:           p.Views,
		IsActive:        p.IsActive,
		SoldAt:          nullTimeToPtr(p.SoldAt),
		ApprovedAt:      nullTimeToPtr(p.ApprovedAt),
		ApprovedBy:      nullStringToString(p.ApprovedBy),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		UserType:     entities.UserType(u.UserType),
		Location: entities.Location{
			City:     u.City,
			Province: u.Province,
			Address:  nullStringToString(u.Address),
		},
		EcocashNumber: nullStringToString(u.EcocashNumber),
		NationalID:    nullStringToString(u.NationalID),
		PhoneVerified: u.PhoneVerified,
		IsActive:      u.IsActive,
		IsSuspended:   u.IsSuspended,
		Rating:        entities.Rating{Average: u.RatingAverage, Count: u.RatingCount},
		LastLogin:     nullTimeToPtr(u.LastLogin),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,

		SuspensionReason: nullStringToString(u.SuspensionReason),
	}
}

func ReviewToEntity(r Review) entities.Review {
	return entities.Review{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ReviewerID: r.ReviewerID,
		ReviewedID: r.ReviewedID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
