package usecase

import (
	"errors"
	"strings"
)

// Sentinel errors carry the user-facing message; the adaptor layer maps them
// to HTTP status codes.
var (
	ErrUserNotFound         = errors.New("User not found")
	ErrEmailTaken           = errors.New("User with this email already exists")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrOTPExpired           = errors.New("OTP expired")
	ErrOTPInvalid           = errors.New("Invalid OTP")
	ErrFlightNotFound       = errors.New("Flight not found")
	ErrFlightDetailNotFound = errors.New("Flight or flight detail not found")
	ErrHotelNotFound        = errors.New("Hotel booking not found")
	ErrItineraryNotFound    = errors.New("Itinerary not found")
	ErrExpenseNotFound      = errors.New("Expense not found")
)

// ValidationError accumulates user-correctable input problems. No mutation is
// performed once one is returned.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Details, "; ")
}

func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
