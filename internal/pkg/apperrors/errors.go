package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the request boundary. The error text doubles as the
// client-facing message, so it matches the wire contract exactly.
var (
	ErrMobileRequired    = errors.New("Mobile number required")
	ErrOTPNotFound       = errors.New("OTP not found")
	ErrOTPExpired        = errors.New("OTP expired")
	ErrOTPInvalid        = errors.New("Invalid OTP")
	ErrUserNotFound      = errors.New("User not registered")
	ErrOTPDelivery       = errors.New("Failed to send OTP")
	ErrInvalidOrderItems = errors.New("Invalid order items")
)

var sentinels = []error{
	ErrMobileRequired,
	ErrOTPNotFound,
	ErrOTPExpired,
	ErrOTPInvalid,
	ErrUserNotFound,
	ErrOTPDelivery,
	ErrInvalidOrderItems,
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOTPDelivery):
		return http.StatusInternalServerError
	case errors.Is(err, ErrMobileRequired),
		errors.Is(err, ErrOTPNotFound),
		errors.Is(err, ErrOTPExpired),
		errors.Is(err, ErrOTPInvalid),
		errors.Is(err, ErrInvalidOrderItems):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for a domain error, hiding
// wrapped internals behind the matching sentinel text
func Message(err error) string {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Internal server error"
}
