// Package cache provides a fixed-capacity LRU cache built on an ordered map.
// Recency is the map's key order: entries move to the back when touched and
// fall off the front when the cache is full.
package cache

import "github.com/quellen/wordhoard/omap"

// LRU holds at most Cap entries, discarding the least recently used entry
// when a new one exceeds the capacity. Not safe for concurrent use.
type LRU[K comparable, V any] struct {
	entries *omap.Ordered[K, V]
	cap     int
	onEvict func(K, V)
}

// New creates an LRU holding up to capacity entries. A capacity below one is
// treated as one.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict creates an LRU that calls onEvict for every entry discarded
// by Put. The callback does not fire for Remove.
func NewWithEvict[K comparable, V any](capacity int, onEvict func(K, V)) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		entries: omap.New[K, V](),
		cap:     capacity,
		onEvict: onEvict,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	value, ok := c.entries.Get(key)
	if ok {
		c.entries.MoveToBack(key)
	}
	return value, ok
}

// Peek returns the value for key without refreshing its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	return c.entries.Get(key)
}

// Put inserts or updates key, marks it most recently used, and evicts from
// the least recently used end until the cache fits its capacity.
func (c *LRU[K, V]) Put(key K, value V) {
	c.entries.Set(key, value)
	c.entries.MoveToBack(key)
	for c.entries.Len() > c.cap {
		k, v, ok := c.entries.PopFront()
		if !ok {
			break
		}
		if c.onEvict != nil {
			c.onEvict(k, v)
		}
	}
}

// Remove drops key from the cache.
func (c *LRU[K, V]) Remove(key K) bool {
	return c.entries.Delete(key)
}

func (c *LRU[K, V]) Len() int {
	return c.entries.Len()
}

func (c *LRU[K, V]) Cap() int {
	return c.cap
}
