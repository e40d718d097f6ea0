package repositories

import (
	"context"
	"time"
)

// CacheRepository is a time-bounded key-value cache
type CacheRepository interface {
	// Get returns the value and true when the key exists and has not expired
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value for ttl
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
