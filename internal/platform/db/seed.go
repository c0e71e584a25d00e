package db

import (
	"log/slog"

	"gorm.io/gorm"

	carentity "car_rental_backend/internal/feature/cars/domain/entity"
)

// defaultCars is the demo inventory inserted into an empty database when
// seeding is enabled.
var defaultCars = []carentity.Car{
	{
		Model:       "Toyota Corolla 2022",
		PricePerDay: 45,
		Status:      "available",
		Description: "Compact sedan, automatic, air conditioning.",
		ImageURL:    "https://images.example.com/cars/corolla.jpg",
	},
	{
		Model:       "Honda CR-V 2023",
		PricePerDay: 70,
		Status:      "available",
		Description: "Mid-size SUV, all-wheel drive, five seats.",
		ImageURL:    "https://images.example.com/cars/crv.jpg",
	},
	{
		Model:       "BMW 3 Series 2021",
		PricePerDay: 95,
		Status:      "available",
		Description: "Sports sedan, leather interior, navigation.",
		ImageURL:    "https://images.example.com/cars/bmw3.jpg",
	},
}

// SeedCars inserts the demo inventory if the cars table is empty.
// It is a no-op on a populated database so restarts do not duplicate rows.
func SeedCars(db *gorm.DB) error {
	var count int64
	if err := db.Model(&carentity.Car{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Copy so gorm's generated IDs don't leak into the package-level slice.
	cars := make([]carentity.Car, len(defaultCars))
	copy(cars, defaultCars)
	if err := db.Create(&cars).Error; err != nil {
		return err
	}

	slog.Info("seeded demo cars", "count", len(cars))
	return nil
}
