// Package bucket implements a chained hash table whose mechanics are
// observable. It exists to make the mapping data model concrete: lookups are
// driven by a 64-bit hash of the key, entries land in power-of-two buckets,
// collisions chain within a bucket, and the table doubles when the average
// chain grows past 6.5 entries. Stats exposes the resulting shape.
package bucket

import (
	"iter"

	"github.com/spaolacci/murmur3"
)

const (
	initialBuckets = 8

	// grow when entries/buckets exceeds loadNum/loadDen (6.5).
	loadNum = 13
	loadDen = 2
)

type entry[K ~string, V any] struct {
	hash  uint64
	key   K
	value V
	next  *entry[K, V]
}

// Map is a hash table from string-like keys to values. The zero value is not
// usable; construct with New.
type Map[K ~string, V any] struct {
	buckets []*entry[K, V]
	size    int
}

// Stats describes the current shape of the table.
type Stats struct {
	Buckets    int
	Entries    int
	Collisions int
	MaxChain   int
	LoadFactor float64
}

func New[K ~string, V any]() *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*entry[K, V], initialBuckets),
	}
}

func hashKey[K ~string](key K) uint64 {
	return murmur3.Sum64([]byte(key))
}

// index relies on len(buckets) being a power of two.
func (m *Map[K, V]) index(hash uint64) int {
	return int(hash & uint64(len(m.buckets)-1))
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	hash := hashKey(key)
	for e := m.buckets[m.index(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts or updates key. New entries are pushed at the head of their
// bucket chain, so bucket order is unrelated to insertion order.
func (m *Map[K, V]) Set(key K, value V) {
	hash := hashKey(key)
	i := m.index(hash)
	for e := m.buckets[i]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			e.value = value
			return
		}
	}
	m.buckets[i] = &entry[K, V]{hash: hash, key: key, value: value, next: m.buckets[i]}
	m.size++
	if m.size*loadDen > len(m.buckets)*loadNum {
		m.grow()
	}
}

func (m *Map[K, V]) Delete(key K) bool {
	hash := hashKey(key)
	i := m.index(hash)
	var prev *entry[K, V]
	for e := m.buckets[i]; e != nil; prev, e = e, e.next {
		if e.hash == hash && e.key == key {
			if prev == nil {
				m.buckets[i] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return true
		}
	}
	return false
}

func (m *Map[K, V]) Len() int {
	return m.size
}

// grow doubles the bucket count and redistributes every entry by its cached
// hash. Chains are rebuilt head-first, so relative key order changes.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]*entry[K, V], len(old)*2)
	for _, e := range old {
		for e != nil {
			next := e.next
			i := m.index(e.hash)
			e.next = m.buckets[i]
			m.buckets[i] = e
			e = next
		}
	}
}

// Keys returns all keys in bucket order. The order is an artifact of hashing
// and table growth: it changes as entries are added and must not be relied
// on.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// All iterates entries in bucket order. The table must not be modified
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Buckets: len(m.buckets),
		Entries: m.size,
	}
	for _, e := range m.buckets {
		chain := 0
		for ; e != nil; e = e.next {
			chain++
		}
		if chain > 1 {
			s.Collisions += chain - 1
		}
		if chain > s.MaxChain {
			s.MaxChain = chain
		}
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
