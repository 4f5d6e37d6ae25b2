package entities

import "time"

type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeAdmin  UserType = "admin"
)

type Rating struct {
	Average float64
	Count   int
}

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	PhoneNumber   string
	UserType      UserType
	Location      Location
	EcocashNumber string
	NationalID    string

	PhoneVerified bool
	IsActive      bool
	IsSuspended   bool
	Rating        Rating
	LastLogin     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// SuspensionReason заполнен, только пока пользователь заблокирован
	SuspensionReason string
}

type RegisterInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	PhoneNumber   string
	UserType      UserType
	Location      Location
	EcocashNumber string
	NationalID    string
}

type AuthResult struct {
	User  User
	Token string
}

// ProfileUpdate частичное обновление профиля, nil поля не меняются.
type ProfileUpdate struct {
	FirstName     *string
	LastName      *string
	PhoneNumber   *string
	Location      *Location
	EcocashNumber *string
	NationalID    *string
}

type UserFilter struct {
	UserType  UserType
	Suspended *bool
}
