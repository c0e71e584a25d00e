// Package usecase implements the business logic for the cars feature.
package usecase

import "errors"

var (
	// ErrCarNotFound is returned when no car matches the given ID.
	ErrCarNotFound = errors.New("car not found")

	// ErrModelAndPriceRequired is returned on add when the model is empty or
	// the price is not positive.
	ErrModelAndPriceRequired = errors.New("model and price are required")

	// ErrIDModelAndPriceRequired is returned on update when the ID or model is
	// missing, or the price is not positive.
	ErrIDModelAndPriceRequired = errors.New("id, model and price are required")

	// ErrCarIDRequired is returned on delete when the ID is missing.
	ErrCarIDRequired = errors.New("car id is required")
)
