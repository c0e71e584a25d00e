// Package entity defines the domain entities for the cars feature.
package entity

import "time"

// Car represents a rentable car in the inventory.
type Car struct {
	// ID is the unique identifier for the car.
	ID uint `gorm:"primaryKey"`

	// Model is the display name of the car (e.g. "Toyota Corolla 2022").
	Model string `gorm:"size:255;not null"`

	// PricePerDay is the rental price per day. It must be greater than zero.
	PricePerDay float64 `gorm:"not null"`

	// Status is a free-form availability string. New cars default to "available".
	// It is not enforced as an enum at the storage level.
	Status string `gorm:"size:50;not null;default:available"`

	// Description is an optional free-text description.
	Description string `gorm:"type:text"`

	// ImageURL is an optional URL to a photo of the car.
	ImageURL string `gorm:"size:512"`

	// CreatedAt is the timestamp when the car was added to the inventory.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the car was last updated.
	UpdatedAt time.Time
}
