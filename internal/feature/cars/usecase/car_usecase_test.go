package usecase

import (
	"context"
	"errors"
	"testing"

	"car_rental_backend/internal/feature/cars/domain/entity"
)

// mockCarRepository is a mock implementation of the CarRepository interface.
type mockCarRepository struct {
	ListFunc   func(ctx context.Context) ([]entity.Car, error)
	CreateFunc func(ctx context.Context, car *entity.Car) error
	UpdateFunc func(ctx context.Context, car *entity.Car) error
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockCarRepository) List(ctx context.Context) ([]entity.Car, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, car)
	}
	return nil
}

func (m *mockCarRepository) Update(ctx context.Context, car *entity.Car) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, car)
	}
	return nil
}

func (m *mockCarRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func TestCarUsecase_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("successful add with explicit status", func(t *testing.T) {
		mockRepo := &mockCarRepository{
			CreateFunc: func(ctx context.Context, car *entity.Car) error {
				car.ID = 3
				return nil
			},
		}
		uc := NewCarUsecase(mockRepo)

		car, err := uc.Add(ctx, "Mazda MX-5", 80, "unavailable", "Two-seater.", "https://img/mx5.jpg")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if car.ID != 3 || car.Model != "Mazda MX-5" || car.Status != "unavailable" {
			t.Errorf("unexpected car: %+v", car)
		}
	})

	t.Run("empty status defaults to available", func(t *testing.T) {
		uc := NewCarUsecase(&mockCarRepository{})

		car, err := uc.Add(ctx, "Mazda MX-5", 80, "", "", "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if car.Status != DefaultStatus {
			t.Errorf("expected status %q, got %q", DefaultStatus, car.Status)
		}
	})

	t.Run("validation failures do not touch the repository", func(t *testing.T) {
		tests := []struct {
			name  string
			model string
			price float64
		}{
			{"empty model", "", 80},
			{"zero price", "Mazda MX-5", 0},
			{"negative price", "Mazda MX-5", -10},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := &mockCarRepository{
					CreateFunc: func(ctx context.Context, car *entity.Car) error {
						t.Error("Create should not be called on validation failure")
						return nil
					},
				}
				uc := NewCarUsecase(mockRepo)

				_, err := uc.Add(ctx, tt.model, tt.price, "", "", "")

				if !errors.Is(err, ErrModelAndPriceRequired) {
					t.Errorf("expected ErrModelAndPriceRequired, got: %v", err)
				}
			})
		}
	})
}

func TestCarUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("successful full replace", func(t *testing.T) {
		var updated *entity.Car
		mockRepo := &mockCarRepository{
			UpdateFunc: func(ctx context.Context, car *entity.Car) error {
				updated = car
				return nil
			},
		}
		uc := NewCarUsecase(mockRepo)

		car, err := uc.Update(ctx, 3, "Mazda MX-5 RF", 90, "available", "", "")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil || updated.ID != 3 || updated.Model != "Mazda MX-5 RF" {
			t.Errorf("repository received unexpected car: %+v", updated)
		}
		if car.PricePerDay != 90 {
			t.Errorf("expected price 90, got %v", car.PricePerDay)
		}
	})

	t.Run("missing id, model or price", func(t *testing.T) {
		uc := NewCarUsecase(&mockCarRepository{})

		for _, args := range []struct {
			id    uint
			model string
			price float64
		}{
			{0, "Mazda MX-5", 80},
			{3, "", 80},
			{3, "Mazda MX-5", 0},
		} {
			_, err := uc.Update(ctx, args.id, args.model, args.price, "", "", "")
			if !errors.Is(err, ErrIDModelAndPriceRequired) {
				t.Errorf("expected ErrIDModelAndPriceRequired for %+v, got: %v", args, err)
			}
		}
	})

	t.Run("missing car propagates ErrCarNotFound", func(t *testing.T) {
		mockRepo := &mockCarRepository{
			UpdateFunc: func(ctx context.Context, car *entity.Car) error {
				return ErrCarNotFound
			},
		}
		uc := NewCarUsecase(mockRepo)

		_, err := uc.Update(ctx, 99, "Mazda MX-5", 80, "", "", "")

		if !errors.Is(err, ErrCarNotFound) {
			t.Errorf("expected ErrCarNotFound, got: %v", err)
		}
	})
}

func TestCarUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		uc := NewCarUsecase(&mockCarRepository{})

		if err := uc.Delete(ctx, 0); !errors.Is(err, ErrCarIDRequired) {
			t.Errorf("expected ErrCarIDRequired, got: %v", err)
		}
	})

	t.Run("missing car propagates ErrCarNotFound", func(t *testing.T) {
		mockRepo := &mockCarRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return ErrCarNotFound
			},
		}
		uc := NewCarUsecase(mockRepo)

		if err := uc.Delete(ctx, 99); !errors.Is(err, ErrCarNotFound) {
			t.Errorf("expected ErrCarNotFound, got: %v", err)
		}
	})
}
