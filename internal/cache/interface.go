package cache

import (
	"context"
	"time"
)

// Service is the key-value store backing read-through lookups, currently
// the profile projections served on user reads. Values are opaque bytes;
// callers own the encoding.
type Service interface {
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns the value stored under key, or ErrCacheMiss when the key
	// is absent. Any other error is a transport failure.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
