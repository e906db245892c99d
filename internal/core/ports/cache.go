package ports

import (
	"context"
	"time"
)

// Cache is a small JSON value cache. Get reports whether the key was present
// and, when it was, decodes the stored value into dest.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
