// Package dto defines data transfer objects for the bookings feature's HTTP transport layer.
package dto

// CreateBookingReq represents the request body for /bookings/create_booking.
// The owning user is taken from the session, never from the request.
type CreateBookingReq struct {
	CarID     uint   `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeleteBookingReq represents the request body for /bookings/delete_booking.
type DeleteBookingReq struct {
	BookingID uint `json:"booking_id"`
}
