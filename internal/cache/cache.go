// Package cache provides a fixed-capacity key/value store with
// least-recently-used eviction.
//
// The cache tracks recency with an intrusive doubly-linked list paired with a
// map from key to list node, so Get, Set and eviction are all O(1). Entries
// are evicted only under capacity pressure or by an explicit Clear; there is
// no time-based expiry.
//
// All operations are safe for concurrent use. Recency bookkeeping is a
// read-modify-write sequence, so even Get takes the write lock.
package cache

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCapacity is returned by New when capacity is below 1.
var ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

// node is an element of the intrusive recency list. The list is anchored by
// two sentinels so insertion and unlinking never special-case the ends.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// Cache is a bounded LRU cache. The zero value is not usable; construct with
// New.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	head     *node[K, V] // sentinel; head.next is most recently used
	tail     *node[K, V] // sentinel; tail.prev is least recently used
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
		head:     &node[K, V]{},
		tail:     &node[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c, nil
}

// Get returns the value stored under key and marks it most recently used.
// The second return value reports whether the key was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(n)
	return n.value, true
}

// Set inserts or overwrites the value under key and marks it most recently
// used. If the insertion pushes the cache past capacity, the least recently
// used entry is evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.pushFront(n)

	if len(c.items) > c.capacity {
		oldest := c.tail.prev
		c.unlink(oldest)
		delete(c.items, oldest.key)
	}
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*node[K, V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if c.head.next == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}
