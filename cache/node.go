package cache

// node is an intrusive doubly linked list element owned by the cache.
// The *node stored in the lookup map doubles as the entry's locator into
// the recency list: moving or unlinking one node never touches the links
// of any other node, so locators held for other entries stay valid across
// any single mutation.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links: head is MRU, tail is LRU.
	prev *node[K, V]
	next *node[K, V]
}

// Key returns the node key (part of policy.Node interface).
func (n *node[K, V]) Key() K { return n.key }

// Value returns a pointer to the stored value (part of policy.Node interface).
// The pointer lets a policy update the value in place without re-linking.
func (n *node[K, V]) Value() *V { return &n.val }
