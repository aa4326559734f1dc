package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Validation errors.
	ErrNegativeAmount       = errors.New("money amount must not be negative")
	ErrInvalidMultiplier    = errors.New("multiplier must not be negative")
	ErrInvalidNumber        = errors.New("business number format is not valid")
	ErrInvalidQuantity      = errors.New("quantity must be between 1 and 999")
	ErrEmptyCart            = errors.New("cart has no items")
	ErrBlankCancelReason    = errors.New("cancellation reason must not be blank")
	ErrInvalidDeliveryInfo  = errors.New("delivery info is not valid")
	ErrInvalidPaymentWindow = errors.New("payment expiration window must be positive")

	// * Business errors.
	ErrOrderNotFound     = errors.New("order not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrAmountMismatch    = errors.New("callback amount does not match payment amount")
	ErrSignatureMismatch = errors.New("callback signature verification failed")
)

// ErrStatusTransition is the base error every StatusTransitionError matches
// via errors.Is, so callers can distinguish transition failures from
// validation failures without knowing the concrete transition.
var ErrStatusTransition = errors.New("illegal status transition")

// StatusTransitionError reports a state-machine transition attempted from a
// state that does not allow it.
type StatusTransitionError struct {
	Entity string
	From   string
	Action string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("%s cannot be %s from status %s", e.Entity, e.Action, e.From)
}

func (e *StatusTransitionError) Is(target error) bool {
	return target == ErrStatusTransition
}
