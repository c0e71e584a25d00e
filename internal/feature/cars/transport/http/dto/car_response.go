package dto

import (
	"time"

	"car_rental_backend/internal/feature/cars/domain/entity"
)

// CarRes is the JSON representation of a car.
type CarRes struct {
	ID          uint      `json:"id"`
	Model       string    `json:"model"`
	PricePerDay float64   `json:"price_per_day"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CarResFromEntity converts a domain entity to its JSON representation.
func CarResFromEntity(c *entity.Car) CarRes {
	return CarRes{
		ID:          c.ID,
		Model:       c.Model,
		PricePerDay: c.PricePerDay,
		Status:      c.Status,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
	}
}

// ListCarsRes represents the response for /api/get_cars.
type ListCarsRes struct {
	Cars []CarRes `json:"cars"`
}

// CarMutationRes represents the response for a successful add or update.
type CarMutationRes struct {
	Success bool   `json:"success"`
	Car     CarRes `json:"car"`
}
