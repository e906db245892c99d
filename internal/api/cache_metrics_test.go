package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agenciahub/backend/internal/api/metrics"
)

type fakeCache struct {
	hit bool
	err error
}

func (c *fakeCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return c.hit, c.err
}

func (c *fakeCache) Set(context.Context, string, any, time.Duration) error { return nil }

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	hits := metrics.DashboardCacheTotal.WithLabelValues("hit")
	misses := metrics.DashboardCacheTotal.WithLabelValues("miss")
	hitsBefore := testutil.ToFloat64(hits)
	missesBefore := testutil.ToFloat64(misses)

	inner := &fakeCache{}
	cache := newInstrumentedCache(inner)

	if _, err := cache.Get(context.Background(), "k", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	inner.hit = true
	if _, err := cache.Get(context.Background(), "k", nil); err != nil {
		t.Fatalf("get: %v", err)
	}

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 1 {
		t.Fatalf("expected 1 hit, counted %v", got)
	}
	if got := testutil.ToFloat64(misses) - missesBefore; got != 1 {
		t.Fatalf("expected 1 miss, counted %v", got)
	}
}

func TestInstrumentedCache_SkipsCountOnError(t *testing.T) {
	misses := metrics.DashboardCacheTotal.WithLabelValues("miss")
	before := testutil.ToFloat64(misses)

	cache := newInstrumentedCache(&fakeCache{err: errors.New("redis down")})
	if _, err := cache.Get(context.Background(), "k", nil); err == nil {
		t.Fatalf("expected error passthrough")
	}

	if got := testutil.ToFloat64(misses) - before; got != 0 {
		t.Fatalf("errors must not count as misses, counted %v", got)
	}
}
