package bookings

import "errors"

var (
	// ErrMissingField is returned when a required booking field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidReference is returned when the referenced service does not exist.
	ErrInvalidReference = errors.New("invalid service ID")

	// ErrInvalidContact is returned when the contact details fail validation.
	ErrInvalidContact = errors.New("invalid contact details")

	// ErrNotFound is returned when no booking has the requested ID.
	ErrNotFound = errors.New("booking not found")

	// ErrUnauthorized is returned when the requester does not own the booking.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal wraps unexpected storage errors. The wrapped detail is
	// logged, never returned to callers.
	ErrInternal = errors.New("internal error")
)
