package cache

import (
	"context"
	"iter"

	"github.com/IvanBrykalov/lrucache/policy"
	"github.com/IvanBrykalov/lrucache/policy/lru"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errorsNew("cache: no Loader provided")

// ErrClosed is returned by GetOrLoad after Close.
var ErrClosed = errorsNew("cache: closed")

// lightweight local errors.New to avoid importing std 'errors' everywhere
func errorsNew(s string) error { return &strErr{s} }

type strErr struct{ s string }

func (e *strErr) Error() string { return e.s }

// cache is an in-memory KV store with a pluggable eviction policy.
// It couples two structures that are kept in lockstep by every mutating
// operation: a map for O(1) lookup and an intrusive doubly linked list
// for recency ordering (head=MRU, tail=LRU). The map value *node is the
// stable locator into the list.
//
// NOT safe for concurrent use; see the Cache interface docs.
type cache[K comparable, V any] struct {
	m    map[K]*node[K, V]
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	len  int         // number of resident entries
	cap  int         // entry capacity

	// Policy manipulates the list through hooks; the engine owns the map.
	pol policy.CachePolicy[K, V]
	opt Options[K, V]

	closed bool
}

// New constructs a cache with the provided Options.
// Defaults:
//   - nil Metrics -> NoopMetrics
//   - nil Policy  -> LRU
//
// Capacity must be >= 0 (New panics otherwise). Capacity 0 retains nothing:
// insertions are accepted and immediately released through OnEvict.
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Capacity < 0 {
		panic("Capacity must be >= 0")
	}
	// default Metrics
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	// default Policy: LRU
	if opt.Policy == nil {
		opt.Policy = lru.New[K, V]()
	}

	// return pointer-to-impl as the interface (avoids unexported-return lint)
	c := &cache[K, V]{
		m:   make(map[K]*node[K, V], opt.Capacity),
		cap: opt.Capacity,
		opt: opt,
	}
	c.pol = opt.Policy.New(cacheHooks[K, V]{c: c})
	return c
}

// NewFromPairs constructs a cache and applies the pairs in order via Set,
// so a later pair with a duplicate key overwrites the earlier value and
// re-freshens its recency. If opt.Capacity is 0 and pairs is non-empty,
// the capacity defaults to len(pairs).
func NewFromPairs[K comparable, V any](opt Options[K, V], pairs ...Pair[K, V]) Cache[K, V] {
	if opt.Capacity == 0 && len(pairs) > 0 {
		opt.Capacity = len(pairs)
	}
	c := New[K, V](opt)
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// ---- Cache[K,V] implementation ----

// Add inserts k→v only if absent.
// Returns false if the key already exists (no update is performed).
func (c *cache[K, V]) Add(k K, v V) bool {
	if c.closed {
		return false
	}
	if _, exists := c.m[k]; exists {
		return false
	}
	c.insert(k, v)
	return true
}

// Set inserts or updates k→v and promotes the entry to MRU.
// On update the previous value is released through OnEvict first.
func (c *cache[K, V]) Set(k K, v V) {
	if c.closed {
		return
	}
	if n, ok := c.m[k]; ok {
		c.dispose(k, n.val, EvictReplaced)
		c.pol.OnUpdate(n)
		n.val = v
		return
	}
	c.insert(k, v)
}

// Get returns the value for k and a presence flag.
// On hit, the entry is promoted according to the active policy.
// A miss has no side effects.
func (c *cache[K, V]) Get(k K) (V, bool) {
	if c.closed {
		var zero V
		return zero, false
	}
	n, ok := c.m[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.pol.OnGet(n)
	c.opt.Metrics.Hit()
	return n.val, true
}

// Peek returns the value for k without touching recency or hit/miss counters.
func (c *cache[K, V]) Peek(k K) (V, bool) {
	if n, ok := c.m[k]; ok && !c.closed {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Contains reports presence without touching recency.
func (c *cache[K, V]) Contains(k K) bool {
	if c.closed {
		return false
	}
	_, ok := c.m[k]
	return ok
}

// Touch promotes k to MRU without reading its value.
func (c *cache[K, V]) Touch(k K) bool {
	if c.closed {
		return false
	}
	n, ok := c.m[k]
	if !ok {
		return false
	}
	c.pol.OnGet(n)
	return true
}

// Replace installs a new value for an existing key.
// The old value is released through OnEvict before the entry is promoted
// and the new value installed. Returns false (and releases nothing) if k
// is absent.
func (c *cache[K, V]) Replace(k K, v V) bool {
	if c.closed {
		return false
	}
	n, ok := c.m[k]
	if !ok {
		return false
	}
	c.dispose(k, n.val, EvictReplaced)
	c.pol.OnUpdate(n)
	n.val = v
	return true
}

// Remove deletes k if present and returns true on success.
func (c *cache[K, V]) Remove(k K) bool {
	if c.closed {
		return false
	}
	n, ok := c.m[k]
	if !ok {
		return false
	}
	c.evictNode(n, EvictRemoved)
	c.opt.Metrics.Size(c.len)
	return true
}

// RemoveOldest removes and returns the least-recently-used entry.
func (c *cache[K, V]) RemoveOldest() (K, V, bool) {
	if tail := c.back(); tail != nil && !c.closed {
		k, v := tail.key, tail.val
		c.evictNode(tail, EvictRemoved)
		c.opt.Metrics.Size(c.len)
		return k, v, true
	}
	var zk K
	var zv V
	return zk, zv, false
}

// Purge removes and releases every entry. Capacity is unchanged.
func (c *cache[K, V]) Purge() {
	if c.closed {
		return
	}
	c.drain(EvictPurged)
}

// Resize sets the capacity and evicts LRU entries until the cache fits.
// Returns the number of entries evicted.
func (c *cache[K, V]) Resize(n int) int {
	if c.closed {
		return 0
	}
	if n < 0 {
		n = 0
	}
	c.cap = n
	evicted := 0
	for c.len > c.cap {
		c.evictNode(c.back(), EvictResized)
		evicted++
	}
	c.opt.Metrics.Size(c.len)
	return evicted
}

// Len returns the number of resident entries.
func (c *cache[K, V]) Len() int { return c.len }

// Cap returns the current capacity.
func (c *cache[K, V]) Cap() int { return c.cap }

// Empty reports whether the cache holds no entries.
func (c *cache[K, V]) Empty() bool { return c.len == 0 }

// GetOrLoad returns the value for k; on miss it loads via Options.Loader
// and inserts the result. If no Loader is configured, returns ErrNoLoader.
func (c *cache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	if c.closed {
		var zero V
		return zero, ErrClosed
	}
	// fast path
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}
	v, err := c.opt.Loader(ctx, k)
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(k, v)
	return v, nil
}

// All iterates over all entries in map order (unrelated to recency).
// The cache must not be mutated while iterating.
func (c *cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, n := range c.m {
			if !yield(k, n.val) {
				return
			}
		}
	}
}

// Keys returns the resident keys in unspecified order.
func (c *cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.len)
	for k := range c.m {
		keys = append(keys, k)
	}
	return keys
}

// SetLoader installs or replaces the load-on-miss policy.
func (c *cache[K, V]) SetLoader(fn func(ctx context.Context, k K) (V, error)) {
	c.opt.Loader = fn
}

// SetOnEvict installs or replaces the eviction callback.
// It applies to subsequent removals only.
func (c *cache[K, V]) SetOnEvict(fn func(k K, v V, reason EvictReason)) {
	c.opt.OnEvict = fn
}

// Close releases every resident value through OnEvict and marks the cache
// closed. Future operations are ignored. Close is idempotent.
func (c *cache[K, V]) Close() error {
	if c.closed {
		return nil
	}
	c.drain(EvictClosed)
	c.closed = true
	return nil
}

// -------------------- internals --------------------

// insert adds a new entry as MRU via policy hooks, then trims to capacity.
// With capacity 0 the entry itself is the trim victim, so the cache
// accepts the insert and immediately releases the value (exactly once).
func (c *cache[K, V]) insert(k K, v V) {
	n := &node[K, V]{key: k, val: v}
	c.m[k] = n

	// Let the policy place the node (and optionally suggest an eviction).
	if ev := c.pol.OnAdd(n); ev != nil {
		c.evictNode(ev.(*node[K, V]), EvictCapacity)
	}
	for c.len > c.cap {
		c.evictNode(c.back(), EvictCapacity)
	}
	c.opt.Metrics.Size(c.len)
}

// evictNode removes the node from both structures and releases its value.
// Both structures are updated before OnEvict runs, so the callback observes
// the cache without the entry.
func (c *cache[K, V]) evictNode(n *node[K, V], reason EvictReason) {
	c.pol.OnRemove(n)
	c.unlink(n)
	delete(c.m, n.key)
	c.dispose(n.key, n.val, reason)
}

// drain evicts every entry, LRU first.
func (c *cache[K, V]) drain(reason EvictReason) {
	for c.tail != nil {
		c.evictNode(c.tail, reason)
	}
	c.opt.Metrics.Size(c.len)
}

// dispose reports a value permanently leaving the cache. Every removal
// path funnels through here exactly once per value.
func (c *cache[K, V]) dispose(k K, v V, reason EvictReason) {
	c.opt.Metrics.Evict(reason)
	if cb := c.opt.OnEvict; cb != nil {
		cb(k, v, reason)
	}
}
