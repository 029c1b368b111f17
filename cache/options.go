package cache

import (
	"context"

	"github.com/IvanBrykalov/lrucache/policy"
)

// EvictReason explains why a value permanently left the cache.
// Every removal path carries a distinct reason, so the OnEvict callback
// can tell capacity pressure apart from caller-initiated removal.
type EvictReason int

const (
	// EvictCapacity — removed as least-recently-used to satisfy the capacity limit.
	EvictCapacity EvictReason = iota
	// EvictRemoved — removed explicitly via Remove or RemoveOldest.
	EvictRemoved
	// EvictReplaced — the old value was overwritten by Set or Replace.
	EvictReplaced
	// EvictResized — trimmed by Resize to fit a smaller capacity.
	EvictResized
	// EvictPurged — removed by Purge.
	EvictPurged
	// EvictClosed — released by Close.
	EvictClosed
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures the cache behavior. Zero values are safe;
// defaults are applied in New():
//   - nil Policy  => LRU
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. Must be >= 0; New panics otherwise.
	// A capacity of 0 retains nothing: insertions are accepted and the value
	// is immediately released through OnEvict.
	Capacity int

	// Policy is the eviction policy; nil => strict LRU.
	Policy policy.Policy[K, V]

	// Loader synthesizes a value for a missing key. Used by GetOrLoad;
	// when nil, GetOrLoad returns ErrNoLoader on a miss.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called exactly once whenever a value permanently leaves the
	// cache — capacity eviction, explicit removal, overwrite, resize trim,
	// Purge, or Close. Callbacks run synchronously inside the mutating
	// operation and must not panic; a panic escaping OnEvict leaves the
	// cache state for that removal step unspecified.
	OnEvict func(k K, v V, reason EvictReason)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil => NoopMetrics.
	Metrics Metrics
}

// Pair is a key/value pair for bulk construction via NewFromPairs.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
