package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rajaprint-backend/internal/domain"
	memcache "rajaprint-backend/internal/infrastructure/cache"
)

func TestZoneRegistry_InvalidateDuringLoadIsNotCached(t *testing.T) {
	loading := make(chan struct{})
	release := make(chan struct{})
	active := []domain.ShippingZone{lahoreMetro()}

	repo := &mockZoneRepo{}
	repo.ActiveByPriorityFunc = func(ctx context.Context) ([]domain.ShippingZone, error) {
		if repo.activeCalls == 1 {
			close(loading)
			<-release
			return []domain.ShippingZone{lahoreMetro()}, nil
		}
		return active, nil
	}
	reg := NewZoneRegistry(repo, memcache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	ctx := context.Background()

	done := make(chan []domain.ShippingZone)
	go func() {
		zones, err := reg.ActiveByPriority(ctx)
		assert.NoError(t, err)
		done <- zones
	}()

	<-loading
	// The zone is disabled while the first read is still in flight.
	active = nil
	reg.Invalidate()
	close(release)

	stale := <-done
	require.Len(t, stale, 1)

	zones, err := reg.ActiveByPriority(ctx)
	require.NoError(t, err)
	assert.Empty(t, zones)
	assert.Equal(t, 2, repo.activeCalls)

	// Loads that finish without an intervening write are cached as usual.
	_, err = reg.ActiveByPriority(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.activeCalls)
}

func TestZoneRegistry_InvalidateDropsDefaultAndEnums(t *testing.T) {
	c := memcache.NewMemoryCache(time.Minute, time.Minute)
	repo := &mockZoneRepo{
		FindDefaultFunc: func(ctx context.Context) (*domain.ShippingZone, error) {
			z := remoteAreas()
			return &z, nil
		},
	}
	reg := NewZoneRegistry(repo, c, time.Minute)

	_, err := reg.FindDefault(context.Background())
	require.NoError(t, err)
	c.Set(cacheKeyEnums, &domain.Enums{}, time.Minute)

	reg.Invalidate()

	_, ok := c.Get(cacheKeyDefaultZone)
	assert.False(t, ok)
	_, ok = c.Get(cacheKeyEnums)
	assert.False(t, ok)
}
