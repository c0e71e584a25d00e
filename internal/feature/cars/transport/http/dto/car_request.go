// Package dto defines data transfer objects for the cars feature's HTTP transport layer.
package dto

// AddCarReq represents the request body for the /api/add_car endpoint.
// Status, description and image URL are optional.
type AddCarReq struct {
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// UpdateCarReq represents the request body for the /api/update_car endpoint.
// Updates are full-record replaces; partial updates are not supported.
type UpdateCarReq struct {
	ID          uint    `json:"id"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// DeleteCarReq represents the request body for the /api/delete_car endpoint.
type DeleteCarReq struct {
	ID uint `json:"id"`
}
