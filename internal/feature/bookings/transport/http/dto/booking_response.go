package dto

import (
	"time"

	"car_rental_backend/internal/feature/bookings/domain/entity"
)

// BookingRes is the JSON representation of a newly created booking.
type BookingRes struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	CarID     uint   `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

// BookingResFromEntity converts a domain entity to its JSON representation.
func BookingResFromEntity(b *entity.Booking) BookingRes {
	return BookingRes{
		ID:        b.ID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		Status:    b.Status,
	}
}

// BookingListItem is one row of the booking listing, including the booked
// car's display model.
type BookingListItem struct {
	ID        uint      `json:"id"`
	CarID     uint      `json:"car_id"`
	CarModel  string    `json:"car_model"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingListItemFromEntity converts a joined booking to its JSON representation.
func BookingListItemFromEntity(b *entity.BookingWithCar) BookingListItem {
	return BookingListItem{
		ID:        b.ID,
		CarID:     b.CarID,
		CarModel:  b.CarModel,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

// CreateBookingRes represents the response for a successful booking creation.
type CreateBookingRes struct {
	Success bool       `json:"success"`
	Booking BookingRes `json:"booking"`
}

// ListBookingsRes represents the response for /bookings/get_bookings.
type ListBookingsRes struct {
	Bookings []BookingListItem `json:"bookings"`
}
