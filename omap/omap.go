// Package omap implements an insertion-ordered mapping.
//
// Unlike the native map, iteration follows insertion order, equality is
// order-sensitive, and both ends support constant-time moves and pops, which
// is what an LRU needs.
package omap

import "iter"

type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// Ordered is a mapping that remembers the order keys were first inserted.
// Updating an existing key keeps its position.
type Ordered[K comparable, V any] struct {
	entries map[K]*entry[K, V]
	root    entry[K, V]
}

// New returns an empty ordered mapping.
func New[K comparable, V any]() *Ordered[K, V] {
	o := &Ordered[K, V]{entries: make(map[K]*entry[K, V])}
	o.root.prev = &o.root
	o.root.next = &o.root
	return o
}

// Set stores the given value under the given key. New keys are appended at
// the back; existing keys keep their position.
func (o *Ordered[K, V]) Set(key K, value V) {
	if e, ok := o.entries[key]; ok {
		e.value = value
		return
	}
	e := &entry[K, V]{key: key, value: value}
	o.linkBack(e)
	o.entries[key] = e
}

// Get returns the value stored under the given key.
func (o *Ordered[K, V]) Get(key K) (V, bool) {
	if e, ok := o.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Has returns true if the given key has an entry.
func (o *Ordered[K, V]) Has(key K) bool {
	_, ok := o.entries[key]
	return ok
}

// Delete removes the entry stored under the given key and returns true if an
// entry was removed.
func (o *Ordered[K, V]) Delete(key K) bool {
	e, ok := o.entries[key]
	if !ok {
		return false
	}
	o.unlink(e)
	delete(o.entries, key)
	return true
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return len(o.entries)
}

// MoveToBack moves the entry with the given key behind all others and
// returns true if the key was present.
func (o *Ordered[K, V]) MoveToBack(key K) bool {
	e, ok := o.entries[key]
	if !ok {
		return false
	}
	o.unlink(e)
	o.linkBack(e)
	return true
}

// MoveToFront moves the entry with the given key ahead of all others and
// returns true if the key was present.
func (o *Ordered[K, V]) MoveToFront(key K) bool {
	e, ok := o.entries[key]
	if !ok {
		return false
	}
	o.unlink(e)
	o.linkFront(e)
	return true
}

// PopFront removes and returns the oldest entry.
func (o *Ordered[K, V]) PopFront() (K, V, bool) {
	return o.pop(o.root.next)
}

// PopBack removes and returns the newest entry.
func (o *Ordered[K, V]) PopBack() (K, V, bool) {
	return o.pop(o.root.prev)
}

// Front returns the oldest entry without removing it.
func (o *Ordered[K, V]) Front() (K, V, bool) {
	return o.peek(o.root.next)
}

// Back returns the newest entry without removing it.
func (o *Ordered[K, V]) Back() (K, V, bool) {
	return o.peek(o.root.prev)
}

// Keys returns the keys in order.
func (o *Ordered[K, V]) Keys() []K {
	keys := make([]K, 0, len(o.entries))
	for e := o.root.next; e != &o.root; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// All returns a sequence of all entries in order. The mapping must not be
// mutated during iteration.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := o.root.next; e != &o.root; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// EqualFunc returns true if both mappings hold the same keys in the same
// order with values matching under eq. Order matters: mappings with equal
// contents but different key order are not equal.
func (o *Ordered[K, V]) EqualFunc(other *Ordered[K, V], eq func(a, b V) bool) bool {
	if o.Len() != other.Len() {
		return false
	}
	a, b := o.root.next, other.root.next
	for a != &o.root {
		if a.key != b.key || !eq(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Equal returns true if both mappings hold the same entries in the same
// order.
func Equal[K, V comparable](a, b *Ordered[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

func (o *Ordered[K, V]) pop(e *entry[K, V]) (K, V, bool) {
	if e == &o.root {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	o.unlink(e)
	delete(o.entries, e.key)
	return e.key, e.value, true
}

func (o *Ordered[K, V]) peek(e *entry[K, V]) (K, V, bool) {
	if e == &o.root {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return e.key, e.value, true
}

func (o *Ordered[K, V]) linkBack(e *entry[K, V]) {
	e.prev = o.root.prev
	e.next = &o.root
	e.prev.next = e
	o.root.prev = e
}

func (o *Ordered[K, V]) linkFront(e *entry[K, V]) {
	e.next = o.root.next
	e.prev = &o.root
	e.next.prev = e
	o.root.next = e
}

func (o *Ordered[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}
