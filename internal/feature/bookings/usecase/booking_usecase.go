package usecase

import (
	"context"

	"car_rental_backend/internal/feature/bookings/domain/entity"
)

// BookingRepository abstracts the persistence layer for booking entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BookingRepository interface {
	// Create persists a new booking and fills in its generated ID.
	Create(ctx context.Context, booking *entity.Booking) error

	// ListByUser returns the bookings owned by the given user, newest first,
	// each joined with the booked car's model.
	ListByUser(ctx context.Context, userID uint) ([]entity.BookingWithCar, error)

	// DeleteOwned removes the booking matching both ID and owner.
	// It returns ErrBookingNotFound when no row matches, whether the booking
	// does not exist or belongs to another user.
	DeleteOwned(ctx context.Context, id, userID uint) error
}

// bookingUsecase implements the booking workflow business logic.
type bookingUsecase struct {
	bookings BookingRepository
}

// NewBookingUsecase creates a new instance of bookingUsecase.
func NewBookingUsecase(bookings BookingRepository) *bookingUsecase {
	return &bookingUsecase{bookings: bookings}
}

// Create records a new booking for the given user. The owner is always the
// session user; the client cannot book on behalf of someone else.
//
// Overlapping bookings for the same car are allowed: availability is not
// coordinated between concurrent requests, each create simply adds a row.
func (u *bookingUsecase) Create(ctx context.Context, userID, carID uint, startDate, endDate, fullName, email, phone string) (*entity.Booking, error) {
	if carID == 0 || startDate == "" || endDate == "" || fullName == "" || email == "" || phone == "" {
		return nil, ErrBookingFieldsRequired
	}

	booking := &entity.Booking{
		UserID:    userID,
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		Status:    entity.StatusPending,
	}
	if err := u.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListByUser returns the caller's bookings, newest first.
func (u *bookingUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.BookingWithCar, error) {
	return u.bookings.ListByUser(ctx, userID)
}

// Delete removes a booking. The compound (id, userID) predicate is the sole
// authorization mechanism: only the creating user can delete a booking.
func (u *bookingUsecase) Delete(ctx context.Context, id, userID uint) error {
	if id == 0 {
		return ErrBookingIDRequired
	}
	return u.bookings.DeleteOwned(ctx, id, userID)
}
