// Package entity defines the domain entities for the bookings feature.
package entity

import "time"

// StatusPending is the status assigned to every new booking. No workflow
// currently advances a booking past this state; cancellation is a physical
// delete by the owner.
const StatusPending = "pending"

// Booking represents a rental booking made by a user for a car.
// Dates are kept as the YYYY-MM-DD strings the client submits; ordering and
// overlap between bookings are intentionally not enforced (walk-up model,
// reconciled manually).
type Booking struct {
	// ID is the unique identifier for the booking.
	ID uint `gorm:"primaryKey"`

	// UserID is the owner of the booking. It is always taken from the
	// session, never from client input.
	UserID uint `gorm:"index;not null"`

	// CarID references the booked car.
	CarID uint `gorm:"index;not null"`

	// StartDate is the first rental day (YYYY-MM-DD).
	StartDate string `gorm:"size:10;not null"`

	// EndDate is the last rental day (YYYY-MM-DD).
	EndDate string `gorm:"size:10;not null"`

	// FullName is the renter's contact name.
	FullName string `gorm:"size:255;not null"`

	// Email is the renter's contact email.
	Email string `gorm:"size:255;not null"`

	// Phone is the renter's contact phone number.
	Phone string `gorm:"size:50;not null"`

	// Status is the booking state. Always StatusPending at creation.
	Status string `gorm:"size:50;not null;default:pending"`

	// CreatedAt is the timestamp when the booking was created.
	CreatedAt time.Time
}

// BookingWithCar is a booking joined with the booked car's display model,
// as returned by the listing query.
type BookingWithCar struct {
	Booking
	CarModel string
}
