package booking

import "fmt"

// BookingError is a typed service error carrying a stable code for the API
// layer to map onto a status.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSessionNotFound is returned when a session ID resolves to nothing,
	// including sessions that expired out of the cache.
	ErrSessionNotFound = &BookingError{Code: "sessionNotFound", Message: "booking session not found or expired"}
	// ErrEmptyCart guards the checkout transition: an order needs at least one line item.
	ErrEmptyCart = &BookingError{Code: "emptyCart", Message: "cannot check out an empty cart"}
	// ErrOrderNotFound is returned for unknown order IDs and for a missing latest-order pointer.
	ErrOrderNotFound = &BookingError{Code: "orderNotFound", Message: "order not found"}
)

// NewValidationError wraps a guest-form validation failure.
func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationError",
		Message: msg,
	}
}
