package cache

import (
	"context"
	"iter"
)

// Cache is a fixed-capacity in-memory key/value cache with LRU eviction.
//
// Typical complexity for operations is amortized O(1): a map lookup plus a
// constant number of intrusive-list pointer fixes. Purge and Close are O(n).
//
// A Cache is NOT safe for concurrent use. The engine assumes exclusive
// single-writer access; callers embedding it in a multi-goroutine context
// must serialize every call externally (e.g., with a sync.Mutex).
type Cache[K comparable, V any] interface {
	// Add inserts k→v only if k is not present, evicting the
	// least-recently-used entry first when the cache is full.
	// Returns false if the key already exists (no update is performed).
	Add(k K, v V) bool

	// Set inserts or updates k→v. On update the old value is released
	// through OnEvict and the entry is promoted to most-recently-used.
	Set(k K, v V)

	// Get returns the value for k and a boolean flag indicating presence.
	// On hit, the entry is promoted to most-recently-used.
	// A miss has no side effects; use GetOrLoad for load-on-miss.
	Get(k K) (V, bool)

	// Peek returns the value for k without updating recency.
	Peek(k K) (V, bool)

	// Contains reports whether k is present without updating recency.
	Contains(k K) bool

	// Touch promotes k to most-recently-used without reading its value.
	// Returns false if k is absent (no-op).
	Touch(k K) bool

	// Replace installs a new value for an existing key: the old value is
	// released through OnEvict and the entry is promoted to
	// most-recently-used. Returns false if k is absent (no-op, no release).
	Replace(k K, v V) bool

	// Remove deletes k if present and returns true on success.
	Remove(k K) bool

	// RemoveOldest removes the least-recently-used entry and returns it.
	// ok is false if the cache is empty (no-op).
	RemoveOldest() (k K, v V, ok bool)

	// Purge removes and releases every entry. Capacity is unchanged.
	Purge()

	// Resize sets the capacity to n (negative n is clamped to 0) and evicts
	// least-recently-used entries until the cache fits. Returns the number
	// of entries evicted.
	Resize(n int) int

	// Len returns the number of resident entries.
	Len() int

	// Cap returns the current capacity.
	Cap() int

	// Empty reports whether the cache holds no entries.
	Empty() bool

	// GetOrLoad returns the value for k, loading it via Options.Loader on a
	// miss and inserting the result (subject to the usual eviction rule).
	// If no Loader was configured, a miss returns ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)

	// All iterates over all entries in lookup-index (map) order, which is
	// unspecified and unrelated to recency. Iteration does not update
	// recency. Mutating the cache while iterating is undefined behavior.
	All() iter.Seq2[K, V]

	// Keys returns the resident keys in unspecified order.
	Keys() []K

	// SetLoader installs or replaces the load-on-miss policy.
	// It applies to subsequent operations only.
	SetLoader(fn func(ctx context.Context, k K) (V, error))

	// SetOnEvict installs or replaces the eviction callback.
	// It applies to subsequent operations only.
	SetOnEvict(fn func(k K, v V, reason EvictReason))

	// Close releases every resident value through OnEvict (in unspecified
	// order) and marks the cache closed. Future operations are ignored.
	Close() error
}
