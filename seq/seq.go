// Package seq provides lazy, pull-based sequences and the operations that
// compose over them. A Sequence hands out fresh single-pass Iterators; all
// derived views (filtering, transformation) evaluate on demand and never
// materialize intermediate results.
package seq

import "iter"

// Predicate decides whether an element is included.
// It must be safe to call repeatedly for the same element.
type Predicate[T any] func(T) bool

// And returns the conjunction of p and q, short-circuiting on p.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && q(v)
	}
}

// Iterator produces the elements of a sequence one at a time.
// Next returns ok=false once the sequence is exhausted; after that,
// every subsequent call must also return ok=false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Sequence is a source of elements that can be traversed.
// Iterate returns a fresh Iterator in O(1); whether repeated calls observe
// the same elements depends on the underlying source (a multi-pass source
// yields equal traversals, a one-shot source may not).
type Sequence[T any] interface {
	Iterate() Iterator[T]
}

// Container is an optional capability of a Sequence: a membership check
// faster than a linear scan. Discovered by type assertion.
type Container[T any] interface {
	Contains(v T) bool
}

// All reports whether p returns true for every element of s.
func All[T any](p Predicate[T], s Sequence[T]) bool {
	it := s.Iterate()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !p(v) {
			return false
		}
	}
	return true
}

// Any reports whether p returns true for at least one element of s.
func Any[T any](p Predicate[T], s Sequence[T]) bool {
	it := s.Iterate()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if p(v) {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether s yields an element equal to v under eq.
// It consults the sequence's own Contains capability when present.
func ContainsFunc[T any](s Sequence[T], v T, eq func(T, T) bool) bool {
	if c, ok := s.(Container[T]); ok {
		return c.Contains(v)
	}
	return Any(func(e T) bool { return eq(e, v) }, s)
}

// Collect drains it into a slice. A nil slice is returned for an empty
// iterator.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Values bridges a Sequence to the standard iterator protocol so it can be
// ranged over and fed to the slices and maps helpers.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterate()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
