package entities

import "time"

type Review struct {
	ID         string
	OrderID    string
	ReviewerID string
	ReviewedID string
	Rating     int
	Comment    string
	IsActive   bool
	CreatedAt  time.Time
}

type CreateReviewInput struct {
	OrderID string
	Rating  int
	Comment string
}
