// Package adapters provides repository implementations for the bookings feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"car_rental_backend/internal/feature/bookings/domain/entity"
	"car_rental_backend/internal/feature/bookings/usecase"
)

// bookingMySQL is a MySQL implementation of the BookingRepository interface.
type bookingMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure bookingMySQL implements BookingRepository.
var _ usecase.BookingRepository = (*bookingMySQL)(nil)

// NewBookingMySQL creates a new instance of bookingMySQL.
func NewBookingMySQL(db *gorm.DB) *bookingMySQL {
	return &bookingMySQL{db: db}
}

// bookingWithCarRow is the scan target for the listing join.
type bookingWithCarRow struct {
	ID        uint
	UserID    uint
	CarID     uint
	CarModel  string
	StartDate string
	EndDate   string
	FullName  string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

// toEntity converts the join row to a domain value.
func (r *bookingWithCarRow) toEntity() entity.BookingWithCar {
	return entity.BookingWithCar{
		Booking: entity.Booking{
			ID:        r.ID,
			UserID:    r.UserID,
			CarID:     r.CarID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			FullName:  r.FullName,
			Email:     r.Email,
			Phone:     r.Phone,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		},
		CarModel: r.CarModel,
	}
}

// Create persists a new booking to the database.
func (r *bookingMySQL) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// ListByUser returns the user's bookings joined with the car model, newest first.
func (r *bookingMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.BookingWithCar, error) {
	var rows []bookingWithCarRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id, bookings.user_id, bookings.car_id, cars.model AS car_model, "+
			"bookings.start_date, bookings.end_date, bookings.full_name, bookings.email, "+
			"bookings.phone, bookings.status, bookings.created_at").
		Joins("INNER JOIN cars ON cars.id = bookings.car_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]entity.BookingWithCar, len(rows))
	for i := range rows {
		bookings[i] = rows[i].toEntity()
	}
	return bookings, nil
}

// DeleteOwned removes the booking matching both ID and owner. The compound
// predicate makes "does not exist" and "not yours" indistinguishable.
func (r *bookingMySQL) DeleteOwned(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrBookingNotFound
	}
	return nil
}
