package usecase

import (
	"context"
	"time"
)

// SearchCache is the subset of the redis cache the recommendation pipeline
// needs. A degraded cache returns (false, nil) from GetJSON and nil from
// SetJSON, so callers never branch on availability.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
