package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")

	ErrDuplicateOrderNumber = errors.New("order number already taken")
)

var (
	// ErrForbidden означает, что пользователь не имеет отношения к ресурсу
	ErrForbidden          = errors.New("forbidden")
	ErrNotOrderParty      = fmt.Errorf("%w: requester is neither buyer nor seller of the order", ErrForbidden)
	ErrNotSeller          = fmt.Errorf("%w: only sellers can manage products", ErrForbidden)
	ErrNotProductOwner    = fmt.Errorf("%w: only the seller can modify this product", ErrForbidden)
	ErrNotOrderBuyer      = fmt.Errorf("%w: only the buyer can review this order", ErrForbidden)
	ErrNotReviewer        = fmt.Errorf("%w: only the reviewer can delete this review", ErrForbidden)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserSuspended      = errors.New("account is suspended")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = fmt.Errorf("%w: order status changed concurrently", ErrInvalidTransition)
)

var (
	ErrPreconditionFailed      = errors.New("precondition failed")
	ErrPhoneNotVerified        = fmt.Errorf("%w: phone number must be verified", ErrPreconditionFailed)
	ErrProductUnavailable      = fmt.Errorf("%w: product is not available for purchase", ErrPreconditionFailed)
	ErrOwnProduct              = fmt.Errorf("%w: cannot order your own product", ErrPreconditionFailed)
	ErrProductNotPending       = fmt.Errorf("%w: product is not pending review", ErrPreconditionFailed)
	ErrOrderNotCompleted       = fmt.Errorf("%w: can only review completed orders", ErrPreconditionFailed)
	ErrAlreadyReviewed         = fmt.Errorf("%w: order has already been reviewed", ErrPreconditionFailed)
	ErrUserExists              = fmt.Errorf("%w: user already exists", ErrPreconditionFailed)
	ErrInvalidVerificationCode = fmt.Errorf("%w: invalid or expired verification code", ErrPreconditionFailed)
	ErrPhoneAlreadyVerified    = fmt.Errorf("%w: phone number is already verified", ErrPreconditionFailed)
	ErrSuspendAdmin            = fmt.Errorf("%w: admins cannot be suspended", ErrPreconditionFailed)
)

// TransitionError содержит текущий и запрошенный статусы.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
