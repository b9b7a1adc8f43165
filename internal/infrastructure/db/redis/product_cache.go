package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storelane/ecommerce-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProductCache caches product reads in Redis.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached product, or (nil, nil) on a miss.
func (c *ProductCache) Get(ctx context.Context, id int64) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product cache get: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, nil
	}
	return &product, nil
}

// Set stores the product (expires after cacheTTL).
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("product cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(product.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after a write.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProductCache) key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
