package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
	ProductStatusSold     ProductStatus = "sold"
	ProductStatusInactive ProductStatus = "inactive"
)

type Location struct {
	City     string
	Province string
	Address  string
}

type Product struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Price           int64
	Condition       string
	Images          []string
	SellerID        string
	Location        Location
	DeliveryOptions []string
	Negotiable      bool

	Status          ProductStatus
	RejectionReason string
	Views           int
	IsActive        bool
	SoldAt          *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProductFilter struct {
	Category string
	Search   string
	MinPrice int64
	MaxPrice int64
}

// ProductStats количество объявлений продавца по статусам.
type ProductStats map[ProductStatus]int

// ProductUpdate поля, которые может менять продавец. nil значит без изменений.
type ProductUpdate struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *int64
	Condition       *string
	Images          []string
	Location        *Location
	DeliveryOptions []string
	Negotiable      *bool
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(p)
}

func init() {
	gob.Register(Product{})
	gob.Register(Location{})
}

// ProductQuery условия выборки товаров. Пустые поля не фильтруются.
type ProductQuery struct {
	SellerID   string
	Status     ProductStatus
	ActiveOnly bool
	Filter     ProductFilter
}
