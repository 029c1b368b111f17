// Package cache provides a generic, fixed-capacity, in-memory cache with
// least-recently-used eviction, lifecycle callbacks, and lightweight
// metrics hooks.
//
// # Design
//
//   - Storage: a map[K]*node for lookups coupled with an intrusive MRU↔LRU
//     doubly linked list for recency ordering. The *node held by the map is
//     a stable locator into the list: moving or removing one entry never
//     invalidates the locators of other entries. All operations are O(1)
//     expected, except Purge and Close which visit every entry.
//
//   - Eviction: strict LRU. Inserting into a full cache evicts the entry at
//     the back of the recency list. Get, Touch, Set, and Replace promote an
//     existing entry to the front; no operation reorders two entries
//     relative to each other except by moving one of them to the front.
//
//   - Lifecycle: Options.OnEvict(k, v, reason) is called exactly once
//     whenever a value permanently leaves the cache — capacity eviction,
//     Remove/RemoveOldest, Set/Replace overwrite, Resize trim, Purge, or
//     Close. The reason tells the paths apart. OnEvict runs synchronously
//     inside the mutating operation and must not panic.
//
//   - Load on miss: GetOrLoad fetches a missing value via Options.Loader
//     and inserts it. Plain Get never inserts; a miss is side-effect-free.
//     If Loader is nil, GetOrLoad returns ErrNoLoader.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the Prometheus adapter from
//     metrics/prom to export them.
//
//   - Policies: the recency bookkeeping is factored behind the policy
//     package's hook interfaces; strict LRU is the only policy shipped and
//     the default.
//
//   - Identity: New hands out the unexported engine behind the Cache
//     interface. A cache holds internal node pointers shared between its
//     two structures and cannot be meaningfully copied.
//
// # Concurrency
//
// A Cache is NOT safe for concurrent use. Every operation is a bounded,
// synchronous computation that assumes exclusive single-writer access.
// Callers embedding the cache in a multi-goroutine context must serialize
// all calls externally, for example behind a sync.Mutex.
//
// # Basic usage
//
//	c := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 1024})
//	defer c.Close()
//	c.Set("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// # With an eviction callback
//
//	c := cache.New[string, *os.File](cache.Options[string, *os.File]{
//	    Capacity: 64,
//	    OnEvict: func(k string, f *os.File, _ cache.EvictReason) {
//	        f.Close() // release the resource the moment it leaves the cache
//	    },
//	})
//
// # With GetOrLoad
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        // e.g. fetch from DB
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
package cache
