package api

import (
	"context"
	"time"

	"github.com/agenciahub/backend/internal/api/metrics"
	"github.com/agenciahub/backend/internal/core/ports"
)

// instrumentedCache decorates a ports.Cache with hit/miss counters. Keeping
// the counters here leaves the core services free of api imports.
type instrumentedCache struct {
	inner ports.Cache
}

func newInstrumentedCache(inner ports.Cache) *instrumentedCache {
	return &instrumentedCache{inner: inner}
}

func (c *instrumentedCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	hit, err := c.inner.Get(ctx, key, dest)
	if err == nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		metrics.DashboardCacheTotal.WithLabelValues(result).Inc()
	}
	return hit, err
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.inner.Set(ctx, key, value, ttl)
}
