// Package usecase implements the business logic for the bookings feature.
package usecase

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given ID and
	// owner. A booking owned by another user yields the same error so that
	// ownership is not leaked.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingFieldsRequired is returned on create when any field is empty.
	ErrBookingFieldsRequired = errors.New("all fields are required")

	// ErrBookingIDRequired is returned on delete when the booking ID is missing.
	ErrBookingIDRequired = errors.New("booking id is required")
)
