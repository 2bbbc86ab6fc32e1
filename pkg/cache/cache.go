// Package cache provides a content-addressed cache for built lattices and
// rendered artifacts. Built lattices are keyed by the hash of their config
// encoding, so an unchanged config file always hits the cache.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LatticeKey generates the cache key for a built lattice from the raw
// config file contents. Any byte change in the config produces a new key.
func LatticeKey(configData []byte) string {
	return "lattice:" + Hash(configData)
}

// ArtifactKey generates the cache key for a rendered artifact derived from
// a lattice, parameterized by output format.
func ArtifactKey(latticeHash, format string) string {
	return hashKey("artifact", latticeHash, format)
}
