// Package handler provides HTTP handlers for the cars feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"car_rental_backend/internal/feature/cars/domain/entity"
	"car_rental_backend/internal/feature/cars/transport/http/dto"
	"car_rental_backend/internal/feature/cars/usecase"
)

// CarUsecase defines the car inventory operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CarUsecase interface {
	// List returns the full inventory, newest first.
	List(ctx context.Context) ([]entity.Car, error)
	// Add creates a new car in the inventory.
	Add(ctx context.Context, model string, pricePerDay float64, status, description, imageURL string) (*entity.Car, error)
	// Update performs a full replace of all mutable fields of a car.
	Update(ctx context.Context, id uint, model string, pricePerDay float64, status, description, imageURL string) (*entity.Car, error)
	// Delete removes a car from the inventory.
	Delete(ctx context.Context, id uint) error
}

// CarHandler handles HTTP requests for the car inventory.
type CarHandler struct {
	cars CarUsecase
}

// NewCarHandler creates a new instance of CarHandler.
func NewCarHandler(cars CarUsecase) *CarHandler {
	return &CarHandler{cars: cars}
}

// List handles GET /api/get_cars. Listing is public (no session required).
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.cars.List(c.Request.Context())
	if err != nil {
		slog.Error("list cars failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cars"})
		return
	}

	res := dto.ListCarsRes{Cars: make([]dto.CarRes, 0, len(cars))}
	for i := range cars {
		res.Cars = append(res.Cars, dto.CarResFromEntity(&cars[i]))
	}
	c.JSON(http.StatusOK, res)
}

// Add handles POST /api/add_car. Requires an authenticated session.
func (h *CarHandler) Add(c *gin.Context) {
	var req dto.AddCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Model and price are required"})
		return
	}

	car, err := h.cars.Add(c.Request.Context(), req.Model, req.PricePerDay, req.Status, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, usecase.ErrModelAndPriceRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Model and price are required"})
			return
		}
		slog.Error("add car failed", "error", err, "model", req.Model)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add car"})
		return
	}

	slog.Info("car added", "car_id", car.ID, "model", car.Model)
	c.JSON(http.StatusOK, dto.CarMutationRes{Success: true, Car: dto.CarResFromEntity(car)})
}

// Update handles POST /api/update_car. Requires an authenticated session.
// A zero-row match is reported as 404 rather than silent success.
func (h *CarHandler) Update(c *gin.Context) {
	var req dto.UpdateCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID, model and price are required"})
		return
	}

	car, err := h.cars.Update(c.Request.Context(), req.ID, req.Model, req.PricePerDay, req.Status, req.Description, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIDModelAndPriceRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID, model and price are required"})
		case errors.Is(err, usecase.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		default:
			slog.Error("update car failed", "error", err, "car_id", req.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		}
		return
	}

	slog.Info("car updated", "car_id", car.ID, "model", car.Model)
	c.JSON(http.StatusOK, dto.CarMutationRes{Success: true, Car: dto.CarResFromEntity(car)})
}

// Delete handles DELETE /api/delete_car. Requires an authenticated session.
func (h *CarHandler) Delete(c *gin.Context) {
	var req dto.DeleteCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Car ID is required"})
		return
	}

	if err := h.cars.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCarIDRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Car ID is required"})
		case errors.Is(err, usecase.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		default:
			slog.Error("delete car failed", "error", err, "car_id", req.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		}
		return
	}

	slog.Info("car deleted", "car_id", req.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
