// Package cache contains the keyed TTL store abstraction backing usage
// history, usage counters and shared snippets. Implementations live in
// subpackages (redis, mem); the application degrades to the in-memory
// implementation when no Redis address is configured.
package cache

import (
	"context"
	"time"
)

// Cache is a small keyed store with per-key TTLs. A zero ttl means no expiry.
type Cache interface {
	// Get returns the raw value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// GetJSON unmarshals the value at key into dst and reports presence.
	GetJSON(ctx context.Context, key string, dst any) (bool, error)

	// Set stores a raw value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetJSON marshals value and stores it.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Del removes a key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error

	// Incr atomically increments the integer at key by one and returns the new
	// value, creating the key at 1 when absent.
	Incr(ctx context.Context, key string) (int64, error)

	// Keys returns the keys matching a glob-style pattern (e.g. "stats:tool:*").
	Keys(ctx context.Context, pattern string) ([]string, error)

	// Ping reports backend reachability for health checks.
	Ping(ctx context.Context) error
}
