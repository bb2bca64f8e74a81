// Package cache stores fetched dataset bodies between runs.
//
// Remote datasets are fetched over HTTP; caching the body on disk lets a
// re-render of the same URL skip the network. Entries carry an optional
// expiration. [NullCache] disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the value for key and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
