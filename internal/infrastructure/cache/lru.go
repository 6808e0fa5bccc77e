// Package cache provides the bounded cache backends used by the bridge's
// policy state.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a fixed-capacity cache evicting the least recently used entry.
// It satisfies port.Cache[K, V]. Get and Set both refresh recency.
type LRU[K comparable, V any] struct {
	capacity int

	mu    sync.Mutex
	index map[K]*list.Element
	order *list.List
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

// NewLRU creates an LRU cache holding at most capacity entries. Capacities
// below one are raised to one.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		index:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get looks up key, refreshing its recency on a hit.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*lruEntry[K, V]).val, true
}

// Set inserts or updates key, evicting the oldest entry when full.
func (c *LRU[K, V]) Set(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		elem.Value.(*lruEntry[K, V]).val = val
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.index, back.Value.(*lruEntry[K, V]).key)
		}
	}
	c.index[key] = c.order.PushFront(&lruEntry[K, V]{key: key, val: val})
}

// Remove drops key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.order.Remove(elem)
		delete(c.index, key)
	}
}

// Len returns the current entry count.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
