package dict

import (
	"fmt"
	"iter"
)

// Mapping is the read surface shared by Dict variants. Chain layers are
// addressed through it so any mapping with these semantics can participate.
type Mapping[K comparable, V any] interface {
	Get(key K) (V, error)
	Has(key K) bool
	Len() int
	All() iter.Seq2[K, V]
}

// Chain is a read-only view composing several mappings in priority order.
// Lookups check each layer in order and return the first hit. The view holds
// references to its layers rather than copies, so it reflects live mutation
// of the underlying mappings. A chain never writes to any layer.
type Chain[K comparable, V any] struct {
	layers []Mapping[K, V]
}

// NewChain returns a view over the given mappings. The first mapping has the
// highest priority.
func NewChain[K comparable, V any](layers ...Mapping[K, V]) *Chain[K, V] {
	return &Chain[K, V]{layers: layers}
}

// Get returns the value from the first layer holding the given key. Keys
// absent from every layer fail with an error wrapping ErrKeyNotFound.
func (c *Chain[K, V]) Get(key K) (V, error) {
	for _, layer := range c.layers {
		if v, err := layer.Get(key); err == nil {
			return v, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Lookup returns the value from the first layer holding the given key, or
// the fallback when every layer misses.
func (c *Chain[K, V]) Lookup(key K, fallback V) V {
	v, err := c.Get(key)
	if err != nil {
		return fallback
	}
	return v
}

// Has returns true if any layer holds the given key.
func (c *Chain[K, V]) Has(key K) bool {
	for _, layer := range c.layers {
		if layer.Has(key) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys across all layers.
func (c *Chain[K, V]) Len() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// Keys returns the distinct keys across all layers. Within the result, keys
// from higher priority layers appear before keys seen only in lower ones.
func (c *Chain[K, V]) Keys() []K {
	var keys []K
	for k := range c.All() {
		keys = append(keys, k)
	}
	return keys
}

// All returns a sequence of all entries visible through the view. Each key
// appears once with the value from its highest priority layer.
func (c *Chain[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]struct{})
		for _, layer := range c.layers {
			for k, v := range layer.All() {
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Layers returns the composed mappings in priority order.
func (c *Chain[K, V]) Layers() []Mapping[K, V] {
	return c.layers
}
