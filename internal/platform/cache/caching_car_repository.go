// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"car_rental_backend/internal/feature/cars/domain/entity"
	"car_rental_backend/internal/feature/cars/usecase"
)

// CachingCarRepository decorates a CarRepository with Redis caching of the
// public car listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingCarRepository struct {
	inner     usecase.CarRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingCarRepository implements CarRepository.
var _ usecase.CarRepository = (*CachingCarRepository)(nil)

// NewCachingCarRepository decorates a CarRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "cars".
func NewCachingCarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CarRepository, namespace string) *CachingCarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "cars"
	}
	return &CachingCarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key for the full inventory listing.
func (c *CachingCarRepository) listKey() string {
	return c.namespace + ":list"
}

// invalidate drops the cached listing. Best effort: a failed delete only
// means a stale read until the TTL expires.
func (c *CachingCarRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// List retrieves the inventory, checking cache first then falling back to the
// database.
func (c *CachingCarRepository) List(ctx context.Context) ([]entity.Car, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Car
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Populate cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Create inserts a car and invalidates the cached listing.
func (c *CachingCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if err := c.inner.Create(ctx, car); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update replaces a car and invalidates the cached listing.
func (c *CachingCarRepository) Update(ctx context.Context, car *entity.Car) error {
	if err := c.inner.Update(ctx, car); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a car and invalidates the cached listing.
func (c *CachingCarRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
