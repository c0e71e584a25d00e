// Package adapters provides repository implementations for the cars feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"car_rental_backend/internal/feature/cars/domain/entity"
	"car_rental_backend/internal/feature/cars/usecase"
)

// carMySQL is a MySQL implementation of the CarRepository interface.
type carMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure carMySQL implements CarRepository.
var _ usecase.CarRepository = (*carMySQL)(nil)

// NewCarMySQL creates a new instance of carMySQL.
func NewCarMySQL(db *gorm.DB) *carMySQL {
	return &carMySQL{db: db}
}

// List returns all cars ordered by creation time descending.
func (r *carMySQL) List(ctx context.Context) ([]entity.Car, error) {
	var cars []entity.Car
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// Create persists a new car to the database.
func (r *carMySQL) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Update replaces all mutable fields of the car with the given ID.
// Existence is checked first so that an update carrying unchanged values is
// not mistaken for a missing row (MySQL reports zero affected rows for both).
func (r *carMySQL) Update(ctx context.Context, car *entity.Car) error {
	var existing entity.Car
	if err := r.db.WithContext(ctx).Where("id = ?", car.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrCarNotFound
		}
		return err
	}

	// Select forces zero values (e.g. cleared description) to be written.
	return r.db.WithContext(ctx).
		Model(&entity.Car{ID: car.ID}).
		Select("model", "price_per_day", "status", "description", "image_url").
		Updates(map[string]interface{}{
			"model":         car.Model,
			"price_per_day": car.PricePerDay,
			"status":        car.Status,
			"description":   car.Description,
			"image_url":     car.ImageURL,
		}).Error
}

// Delete removes the car with the given ID.
func (r *carMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Car{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCarNotFound
	}
	return nil
}
