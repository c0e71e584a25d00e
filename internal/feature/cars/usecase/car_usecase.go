package usecase

import (
	"context"

	"car_rental_backend/internal/feature/cars/domain/entity"
)

// DefaultStatus is the status assigned to cars created without an explicit one.
const DefaultStatus = "available"

// CarRepository abstracts the persistence layer for car entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CarRepository interface {
	// List returns all cars ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.Car, error)

	// Create persists a new car and fills in its generated ID.
	Create(ctx context.Context, car *entity.Car) error

	// Update replaces all mutable fields of the car with the given ID.
	// It returns ErrCarNotFound if no car matches.
	Update(ctx context.Context, car *entity.Car) error

	// Delete removes the car with the given ID.
	// It returns ErrCarNotFound if no car matches.
	Delete(ctx context.Context, id uint) error
}

// carUsecase implements the car inventory business logic.
type carUsecase struct {
	cars CarRepository
}

// NewCarUsecase creates a new instance of carUsecase.
func NewCarUsecase(cars CarRepository) *carUsecase {
	return &carUsecase{cars: cars}
}

// List returns the full inventory, newest first. Listing is public; no
// authentication is required.
func (u *carUsecase) List(ctx context.Context) ([]entity.Car, error) {
	return u.cars.List(ctx)
}

// Add creates a new car in the inventory. An empty status defaults to
// "available".
func (u *carUsecase) Add(ctx context.Context, model string, pricePerDay float64, status, description, imageURL string) (*entity.Car, error) {
	if model == "" || pricePerDay <= 0 {
		return nil, ErrModelAndPriceRequired
	}
	if status == "" {
		status = DefaultStatus
	}

	car := &entity.Car{
		Model:       model,
		PricePerDay: pricePerDay,
		Status:      status,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := u.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Update performs a full replace of all mutable fields of a car.
// Partial updates are not supported. A missing car yields ErrCarNotFound.
func (u *carUsecase) Update(ctx context.Context, id uint, model string, pricePerDay float64, status, description, imageURL string) (*entity.Car, error) {
	if id == 0 || model == "" || pricePerDay <= 0 {
		return nil, ErrIDModelAndPriceRequired
	}
	if status == "" {
		status = DefaultStatus
	}

	car := &entity.Car{
		ID:          id,
		Model:       model,
		PricePerDay: pricePerDay,
		Status:      status,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := u.cars.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Delete removes a car from the inventory.
func (u *carUsecase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrCarIDRequired
	}
	return u.cars.Delete(ctx, id)
}
