// Package set implements an unordered collection of distinct items with the
// usual set algebra. Every operation is available both as a method and as a
// package function over two sets; the two forms always agree.
package set

import "iter"

// Set holds distinct items keyed by their own value. Iteration order is
// unspecified and may change as items are added.
type Set[T comparable] map[T]struct{}

// New returns an empty set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Of returns a set of the given items. Duplicates collapse to one entry.
func Of[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

// Collect returns a set of the items in the given sequence.
func Collect[T comparable](seq iter.Seq[T]) Set[T] {
	s := New[T]()
	for item := range seq {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts the given items.
func (s Set[T]) Add(items ...T) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Has returns true if the given item is a member.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// Delete removes the given items. Absent items are ignored.
func (s Set[T]) Delete(items ...T) {
	for _, item := range items {
		delete(s, item)
	}
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Items returns the members in unspecified order.
func (s Set[T]) Items() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}

// All returns a sequence of the members in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

// Clone returns a copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Equal returns true if both sets hold exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Union returns a new set holding members of either set.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := s.Clone()
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding members of both sets.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := New[T]()
	for item := range small {
		if large.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set holding members of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := New[T]()
	for item := range s {
		if !other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set holding members of exactly one of
// the two sets.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	out := s.Difference(other)
	for item := range other.Difference(s) {
		out[item] = struct{}{}
	}
	return out
}

// Subset returns true if every member of s is in other.
func (s Set[T]) Subset(other Set[T]) bool {
	if len(s) > len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Superset returns true if every member of other is in s.
func (s Set[T]) Superset(other Set[T]) bool {
	return other.Subset(s)
}

// Disjoint returns true if the two sets share no members.
func (s Set[T]) Disjoint(other Set[T]) bool {
	return len(s.Intersect(other)) == 0
}

// Union returns the union of the two sets.
func Union[T comparable](a, b Set[T]) Set[T] {
	return a.Union(b)
}

// Intersection returns the intersection of the two sets.
func Intersection[T comparable](a, b Set[T]) Set[T] {
	return a.Intersect(b)
}

// Difference returns the members of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	return a.Difference(b)
}

// SymmetricDifference returns the members of exactly one of the two sets.
func SymmetricDifference[T comparable](a, b Set[T]) Set[T] {
	return a.SymmetricDifference(b)
}
