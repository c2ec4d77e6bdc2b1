// Package cache stores best-known dominating sets between runs.
//
// # Backends
//
// [Cache] is a byte-oriented key/value store with optional TTLs:
//
//   - [NullCache]: stores nothing (--no-cache)
//   - [FileCache]: one JSON file per key under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (--redis, serve)
//
// # Keys
//
// Keys are derived from the hash of a graph's canonical PACE serialization,
// so the same graph maps to the same entry regardless of file name or
// comment lines. [Keyer] builds keys; [ScopedKeyer] prefixes them to keep
// several namespaces apart in one backend.
//
// Entries are trusted by nobody: pkg/pipeline re-verifies a stored solution
// against the graph before using it.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A missing or expired key is reported as
	// (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Update reads key and writes fn's result in one step with respect to
	// other Updates of the same key, including from other processes sharing
	// the backend. It reports whether fn chose to write.
	Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc) (bool, error)

	// Close releases backend resources.
	Close() error
}

// UpdateFunc maps the current value of a key (found is false for a missing
// key) to the value to write. Returning write == false leaves the key as is.
// Backends may call it more than once when a concurrent writer interferes.
type UpdateFunc func(current []byte, found bool) (data []byte, write bool)

// Keyer derives cache keys.
type Keyer interface {
	// SolutionKey returns the key of the best-known solution for a graph.
	SolutionKey(graphHash string) string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey returns "solution:<hash of graphHash>".
func (DefaultKeyer) SolutionKey(graphHash string) string {
	return hashKey("solution", graphHash)
}

// NullCache stores nothing; every Get is a miss. It backs --no-cache.
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }

// Update offers fn an empty key and discards its result.
func (NullCache) Update(_ context.Context, _ string, _ time.Duration, fn UpdateFunc) (bool, error) {
	fn(nil, false)
	return false, nil
}

func (NullCache) Close() error { return nil }
