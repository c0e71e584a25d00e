package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car_rental_backend/internal/feature/cars/domain/entity"
)

// mockCarRepository counts calls so cache hits are observable.
type mockCarRepository struct {
	listCalls int
	cars      []entity.Car
}

func (m *mockCarRepository) List(ctx context.Context) ([]entity.Car, error) {
	m.listCalls++
	return m.cars, nil
}

func (m *mockCarRepository) Create(ctx context.Context, car *entity.Car) error { return nil }
func (m *mockCarRepository) Update(ctx context.Context, car *entity.Car) error { return nil }
func (m *mockCarRepository) Delete(ctx context.Context, id uint) error         { return nil }

func setupCache(t *testing.T, inner *mockCarRepository) (*CachingCarRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCachingCarRepository(client, time.Minute, inner, "cars"), mr
}

func TestCachingCarRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("second read is served from cache", func(t *testing.T) {
		inner := &mockCarRepository{cars: []entity.Car{{ID: 1, Model: "Test", PricePerDay: 42, Status: "available"}}}
		repo, _ := setupCache(t, inner)

		first, err := repo.List(ctx)
		require.NoError(t, err)
		second, err := repo.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.listCalls, "second read must not hit the inner repository")
	})

	t.Run("corrupted cache entry falls back to the inner repository", func(t *testing.T) {
		inner := &mockCarRepository{cars: []entity.Car{{ID: 1, Model: "Test", PricePerDay: 42}}}
		repo, mr := setupCache(t, inner)

		require.NoError(t, mr.Set("cars:list", "{not json"))

		cars, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, 1, inner.listCalls)
	})

	t.Run("nil client bypasses the cache entirely", func(t *testing.T) {
		inner := &mockCarRepository{cars: []entity.Car{{ID: 1, Model: "Test", PricePerDay: 42}}}
		repo := NewCachingCarRepository(nil, time.Minute, inner, "cars")

		_, err := repo.List(ctx)
		require.NoError(t, err)
		_, err = repo.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.listCalls, "without Redis every read goes to the inner repository")
	})
}

func TestCachingCarRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		write func(repo *CachingCarRepository) error
	}{
		{"create", func(repo *CachingCarRepository) error {
			return repo.Create(ctx, &entity.Car{Model: "New", PricePerDay: 10})
		}},
		{"update", func(repo *CachingCarRepository) error {
			return repo.Update(ctx, &entity.Car{ID: 1, Model: "Changed", PricePerDay: 10})
		}},
		{"delete", func(repo *CachingCarRepository) error {
			return repo.Delete(ctx, 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockCarRepository{cars: []entity.Car{{ID: 1, Model: "Test", PricePerDay: 42}}}
			repo, mr := setupCache(t, inner)

			// Warm the cache
			_, err := repo.List(ctx)
			require.NoError(t, err)
			require.True(t, mr.Exists("cars:list"))

			require.NoError(t, tt.write(repo))

			assert.False(t, mr.Exists("cars:list"), "write must drop the cached listing")
		})
	}
}
