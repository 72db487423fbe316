package usecase

import (
	"context"
	"sync"
	"time"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/pkg/cache"
)

const (
	cacheKeyShippingPrefix = "shipping:"
	cacheKeyActiveZones    = "shipping:zones:active"
	cacheKeyDefaultZone    = "shipping:zones:default"
	cacheKeyEnums          = "system:config:enums"
)

// ZoneRegistry is the cached read side of the zone store used by resolution.
//
// Every Invalidate bumps a generation; a load that started before the bump
// is returned to its caller but never written back to the cache.
type ZoneRegistry struct {
	repo  domain.ShippingZoneRepository
	cache cache.CacheService
	ttl   time.Duration

	mu         sync.Mutex
	generation uint64
}

func NewZoneRegistry(repo domain.ShippingZoneRepository, c cache.CacheService, ttl time.Duration) *ZoneRegistry {
	return &ZoneRegistry{repo: repo, cache: c, ttl: ttl}
}

func (r *ZoneRegistry) ActiveByPriority(ctx context.Context) ([]domain.ShippingZone, error) {
	zones, err := rememberCurrent(ctx, r, cacheKeyActiveZones, r.ttl, r.repo.ActiveByPriority)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ShippingZone, len(zones))
	copy(out, zones)
	return out, nil
}

func (r *ZoneRegistry) FindDefault(ctx context.Context) (*domain.ShippingZone, error) {
	zone, err := rememberCurrent(ctx, r, cacheKeyDefaultZone, r.ttl, r.repo.FindDefault)
	if err != nil || zone == nil {
		return nil, err
	}
	z := *zone
	return &z, nil
}

// Invalidate drops everything derived from zone rows, including the
// public enums payload that lists them.
func (r *ZoneRegistry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.cache.DeletePrefix(cacheKeyShippingPrefix)
	r.cache.Delete(cacheKeyEnums)
}

func (r *ZoneRegistry) currentGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// storeIfCurrent caches v only when no Invalidate ran since gen was read.
func (r *ZoneRegistry) storeIfCurrent(gen uint64, key string, v interface{}, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation == gen {
		r.cache.Set(key, v, ttl)
	}
}

// rememberCurrent is cache.Remember guarded by the registry generation, for
// anything derived from zone rows.
func rememberCurrent[T any](ctx context.Context, r *ZoneRegistry, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := r.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := r.currentGeneration()
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	r.storeIfCurrent(gen, key, v, ttl)
	return v, nil
}
