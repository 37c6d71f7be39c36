// Package cache stores rendered chart artifacts between runs.
//
// Three backends implement [Cache]:
//   - [FileCache] for the CLI, one JSON envelope per key under a directory
//   - [RedisCache] for the HTTP server, shared between instances
//   - [NullCache] when caching is disabled
//
// Keys are built by a [Keyer] from content hashes of the inputs and the
// options that influence the output, so a changed hierarchy, registry or
// view never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported through the
	// boolean, not as an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// DefaultTTL is how long labels and artifacts stay cached unless
// configured otherwise.
const DefaultTTL = 24 * time.Hour
