// Package counter implements a counting mapping from items to occurrence
// counts.
package counter

import (
	"cmp"
	"iter"
	"slices"

	"github.com/quellen/wordhoard/omap"
)

// Entry pairs an item with its occurrence count.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Counter counts occurrences of comparable items. Items are remembered in
// first-seen order, which makes MostCommon deterministic for equal counts.
type Counter[T comparable] struct {
	counts *omap.Ordered[T, int]
	total  int
}

// New returns an empty counter.
func New[T comparable]() *Counter[T] {
	return &Counter[T]{counts: omap.New[T, int]()}
}

// Of returns a counter built from the given items.
func Of[T comparable](items ...T) *Counter[T] {
	c := New[T]()
	c.Update(items...)
	return c
}

// Collect returns a counter built from the given sequence.
func Collect[T comparable](seq iter.Seq[T]) *Counter[T] {
	c := New[T]()
	c.UpdateSeq(seq)
	return c
}

// Add adjusts the count of the given item by delta.
func (c *Counter[T]) Add(item T, delta int) {
	n, _ := c.counts.Get(item)
	c.counts.Set(item, n+delta)
	c.total += delta
}

// Update increments the count of each given item by one.
func (c *Counter[T]) Update(items ...T) {
	for _, item := range items {
		c.Add(item, 1)
	}
}

// UpdateSeq increments the count of each item in the sequence by one.
func (c *Counter[T]) UpdateSeq(seq iter.Seq[T]) {
	for item := range seq {
		c.Add(item, 1)
	}
}

// Subtract decrements the count of each given item by one.
func (c *Counter[T]) Subtract(items ...T) {
	for _, item := range items {
		c.Add(item, -1)
	}
}

// Merge adds every count from the other counter into this one.
func (c *Counter[T]) Merge(other *Counter[T]) {
	for item, n := range other.All() {
		c.Add(item, n)
	}
}

// Count returns the count of the given item. Absent items count zero;
// counting never fails.
func (c *Counter[T]) Count(item T) int {
	n, _ := c.counts.Get(item)
	return n
}

// Delete removes the given item entirely and returns true if it was present.
func (c *Counter[T]) Delete(item T) bool {
	n, ok := c.counts.Get(item)
	if !ok {
		return false
	}
	c.total -= n
	return c.counts.Delete(item)
}

// Total returns the sum of all counts. For a counter built from a sequence
// of items this equals the sequence length.
func (c *Counter[T]) Total() int {
	return c.total
}

// Len returns the number of distinct items.
func (c *Counter[T]) Len() int {
	return c.counts.Len()
}

// MostCommon returns entries sorted by descending count. Items with equal
// counts keep their first-seen order. If n <= 0 all entries are returned.
func (c *Counter[T]) MostCommon(n int) []Entry[T] {
	entries := make([]Entry[T], 0, c.counts.Len())
	for item, count := range c.counts.All() {
		entries = append(entries, Entry[T]{Item: item, Count: count})
	}
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// All returns a sequence of all items and counts in first-seen order.
func (c *Counter[T]) All() iter.Seq2[T, int] {
	return c.counts.All()
}
