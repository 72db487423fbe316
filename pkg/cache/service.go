package cache

import (
	"context"
	"time"
)

// CacheService is the in-process key/value cache used for read-mostly data.
type CacheService interface {
	// Get returns the cached value and whether it was present.
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, duration time.Duration)
	Delete(key string)
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(prefix string)
	Flush()
}

// Remember returns the cached T under key, or calls load and caches its
// result for ttl. Load errors are returned and nothing is cached.
func Remember[T any](ctx context.Context, c CacheService, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
