// Package handler provides HTTP handlers for the bookings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"car_rental_backend/internal/feature/bookings/domain/entity"
	"car_rental_backend/internal/feature/bookings/transport/http/dto"
	"car_rental_backend/internal/feature/bookings/usecase"
	"car_rental_backend/internal/platform/session"
)

// BookingUsecase defines the booking operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type BookingUsecase interface {
	// Create records a new booking owned by the given user.
	Create(ctx context.Context, userID, carID uint, startDate, endDate, fullName, email, phone string) (*entity.Booking, error)
	// ListByUser returns the user's bookings, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.BookingWithCar, error)
	// Delete removes a booking owned by the given user.
	Delete(ctx context.Context, id, userID uint) error
}

// BookingHandler handles HTTP requests for the booking workflow.
// Every route requires an authenticated session; the owner is always the
// session user.
type BookingHandler struct {
	bookings BookingUsecase
}

// NewBookingHandler creates a new instance of BookingHandler.
func NewBookingHandler(bookings BookingUsecase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /bookings/create_booking.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), userID, req.CarID,
		req.StartDate, req.EndDate, req.FullName, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		slog.Error("create booking failed", "error", err, "user_id", userID, "car_id", req.CarID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	slog.Info("booking created", "booking_id", booking.ID, "user_id", userID, "car_id", booking.CarID)
	c.JSON(http.StatusOK, dto.CreateBookingRes{Success: true, Booking: dto.BookingResFromEntity(booking)})
}

// List handles GET /bookings/get_bookings. Only the caller's own bookings are
// returned.
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list bookings failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	res := dto.ListBookingsRes{Bookings: make([]dto.BookingListItem, 0, len(bookings))}
	for i := range bookings {
		res.Bookings = append(res.Bookings, dto.BookingListItemFromEntity(&bookings[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /bookings/delete_booking. A booking owned by another
// user yields the same 404 as a missing booking so ownership is not leaked.
func (h *BookingHandler) Delete(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.DeleteBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required"})
		return
	}

	if err := h.bookings.Delete(c.Request.Context(), req.BookingID, userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingIDRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking ID is required"})
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			slog.Error("delete booking failed", "error", err, "booking_id", req.BookingID, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		}
		return
	}

	slog.Info("booking deleted", "booking_id", req.BookingID, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
