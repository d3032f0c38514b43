// Package cache stores assembled graph snapshots between CLI runs.
//
// Ingesting the full ontologies takes minutes; when neither the manifest
// nor any source file has changed since the last run, the ingest command
// reuses the snapshot stored under the run's [SourceKey].
//
// [FileCache] keeps entries as files under a directory. [NullCache] stores
// nothing and backs the --no-cache flag.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// keyType is the prefix of a key up to the first colon, used to label
// cache metrics.
func keyType(key string) string {
	if prefix, _, ok := strings.Cut(key, ":"); ok {
		return prefix
	}
	return "other"
}
