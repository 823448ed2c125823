// Package dict implements mappings with explicit missing-key policies.
//
// A plain Dict fails lookups of absent keys with ErrKeyNotFound. The other
// policies are built on top of that base behavior: Lookup returns a caller
// supplied fallback, GetOrSet inserts a value for absent keys, NewDefault
// fills absent keys from a factory, and WithMissing installs a custom hook
// that is consulted before a lookup fails.
package dict

import (
	"errors"
	"fmt"
	"iter"
)

// ErrKeyNotFound is returned when a lookup key has no entry.
var ErrKeyNotFound = errors.New("key not found")

// MissingFunc derives a value for an absent key. The second return value
// reports whether the hook produced a value. The hook is only invoked on
// true absence, and it may insert entries through Raw. Hooks that re-derive
// a normalized key must read the dict through Raw instead of calling Get,
// which would recurse.
type MissingFunc[K comparable, V any] func(d *Dict[K, V], key K) (V, bool)

// Dict is a mapping with a configurable missing-key policy.
type Dict[K comparable, V any] struct {
	entries map[K]V
	missing MissingFunc[K, V]
}

// New returns an empty dict.
func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{entries: make(map[K]V)}
}

// WithMissing returns an empty dict that consults the given hook before
// failing a lookup.
func WithMissing[K comparable, V any](missing MissingFunc[K, V]) *Dict[K, V] {
	return &Dict[K, V]{entries: make(map[K]V), missing: missing}
}

// NewDefault returns a dict whose missing hook inserts and returns a value
// produced by the factory. Looking up an absent key stores the new value, so
// mutations through a shared value are visible on later lookups of the same
// key.
func NewDefault[K comparable, V any](factory func() V) *Dict[K, V] {
	return WithMissing(func(d *Dict[K, V], key K) (V, bool) {
		if factory == nil {
			var zero V
			return zero, false
		}
		value := factory()
		d.Raw()[key] = value
		return value, true
	})
}

// From returns a dict holding a copy of the entries in the given map.
func From[K comparable, V any](entries map[K]V) *Dict[K, V] {
	d := &Dict[K, V]{entries: make(map[K]V, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
	}
	return d
}

// Wrap returns a dict that reads and writes the caller's map directly. The
// returned dict observes later mutation of the map.
func Wrap[K comparable, V any](entries map[K]V) *Dict[K, V] {
	return &Dict[K, V]{entries: entries}
}

// Collect returns a dict holding all entries from the given sequence.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Dict[K, V] {
	d := New[K, V]()
	d.Update(seq)
	return d
}

// Get returns the value stored under the given key. Absent keys fail with an
// error wrapping ErrKeyNotFound unless a missing hook produces a value.
func (d *Dict[K, V]) Get(key K) (V, error) {
	if d != nil {
		if v, ok := d.entries[key]; ok {
			return v, nil
		}
		if d.missing != nil {
			if v, ok := d.missing(d, key); ok {
				return v, nil
			}
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Lookup returns the value stored under the given key, or the fallback when
// the key is absent. The missing hook is consulted first so overridden
// semantics stay consistent with Get: a hook that inserts, like NewDefault's,
// inserts here too. Only a hookless dict is guaranteed unchanged.
func (d *Dict[K, V]) Lookup(key K, fallback V) V {
	v, err := d.Get(key)
	if err != nil {
		return fallback
	}
	return v
}

// GetOrSet returns the value stored under the given key, inserting and
// returning the given value when the key is absent.
func (d *Dict[K, V]) GetOrSet(key K, value V) V {
	if v, err := d.Get(key); err == nil {
		return v
	}
	d.Set(key, value)
	return value
}

// Has returns true if a lookup of the given key would succeed. The missing
// hook is consulted, matching Get.
func (d *Dict[K, V]) Has(key K) bool {
	_, err := d.Get(key)
	return err == nil
}

// Set stores the given value under the given key.
func (d *Dict[K, V]) Set(key K, value V) {
	if d.entries == nil {
		d.entries = make(map[K]V)
	}
	d.entries[key] = value
}

// Delete removes the entry stored under the given key and returns true if an
// entry was removed.
func (d *Dict[K, V]) Delete(key K) bool {
	if d == nil {
		return false
	}
	_, ok := d.entries[key]
	delete(d.entries, key)
	return ok
}

// Update stores all entries from the given sequence, overwriting entries
// with matching keys.
func (d *Dict[K, V]) Update(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		d.Set(k, v)
	}
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	if d == nil {
		return nil
	}
	keys := make([]K, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	return keys
}

// All returns a sequence of all entries in unspecified order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if d == nil {
			return
		}
		for k, v := range d.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Raw exposes the backing map for missing hooks. Hooks must perform any
// re-attempted lookup against Raw instead of calling Get, which would
// recurse.
func (d *Dict[K, V]) Raw() map[K]V {
	if d.entries == nil {
		d.entries = make(map[K]V)
	}
	return d.entries
}
