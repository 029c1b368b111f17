package cache

import "github.com/IvanBrykalov/lrucache/policy"

// Intrusive MRU/LRU list primitives. All operations are O(1): a constant
// number of pointer fixes, no allocation, no traversal.

// pushFront inserts n at MRU.
func (c *cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.len++
}

// moveToFront promotes n to MRU.
func (c *cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.tail == n {
		c.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// unlink removes n from the list and updates the length.
func (c *cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.head == n {
		c.head = n.next
	}
	if c.tail == n {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
	c.len--
}

// back returns the current LRU node (nil if empty).
func (c *cache[K, V]) back() *node[K, V] { return c.tail }

// -------------------- policy hooks --------------------

// cacheHooks adapts the engine's list operations to policy.Hooks.
type cacheHooks[K comparable, V any] struct{ c *cache[K, V] }

func (h cacheHooks[K, V]) MoveToFront(x policy.Node[K, V]) { h.c.moveToFront(x.(*node[K, V])) }
func (h cacheHooks[K, V]) PushFront(x policy.Node[K, V])   { h.c.pushFront(x.(*node[K, V])) }
func (h cacheHooks[K, V]) Remove(x policy.Node[K, V]) {
	// Policies only detach from the list; map bookkeeping stays with the engine.
	h.c.unlink(x.(*node[K, V]))
}
func (h cacheHooks[K, V]) Back() policy.Node[K, V] {
	// Typed nil must not leak into the interface as non-nil.
	if n := h.c.back(); n != nil {
		return n
	}
	return nil
}
func (h cacheHooks[K, V]) Len() int { return h.c.len }
