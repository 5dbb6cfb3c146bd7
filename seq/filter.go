package seq

import "iter"

// FilterIterator wraps a base Iterator and yields only the elements for
// which the predicate returns true. It owns the base cursor exclusively.
type FilterIterator[T any] struct {
	base Iterator[T]
	pred Predicate[T]
	done bool
}

// NewFilterIterator returns an iterator over the elements of base that
// satisfy p.
func NewFilterIterator[T any](base Iterator[T], p Predicate[T]) *FilterIterator[T] {
	return &FilterIterator[T]{base: base, pred: p}
}

// Next advances past non-matching elements and returns the next match.
// The cost of a single call is proportional to the number of base elements
// skipped; with no match remaining it scans the rest of the base. Once Next
// has reported exhaustion it latches and keeps reporting it.
func (it *FilterIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	for {
		v, ok := it.base.Next()
		if !ok {
			it.done = true
			return zero, false
		}
		if it.pred(v) {
			return v, true
		}
	}
}

// FilterSequence is a lazy filtering view over a base Sequence. No filtered
// copy is made: the predicate is evaluated fresh for every step of every
// traversal.
type FilterSequence[T any] struct {
	base Sequence[T]
	pred Predicate[T]
}

// Filter returns a lazy view of the elements of base that satisfy p.
// Filtering an already filtered sequence does not stack wrappers: the result
// views the original base through the conjunction of both predicates.
func Filter[T any](base Sequence[T], p Predicate[T]) *FilterSequence[T] {
	if fs, ok := base.(*FilterSequence[T]); ok {
		return &FilterSequence[T]{base: fs.base, pred: fs.pred.And(p)}
	}
	return &FilterSequence[T]{base: base, pred: p}
}

// Filter narrows the view further. The result shares the original base and
// combines the predicates, keeping the wrapper depth at one no matter how
// often it is chained.
func (s *FilterSequence[T]) Filter(p Predicate[T]) *FilterSequence[T] {
	return &FilterSequence[T]{base: s.base, pred: s.pred.And(p)}
}

// Iterate returns a fresh iterator over the matching elements. O(1);
// independent of the base size and of any other live traversal.
func (s *FilterSequence[T]) Iterate() Iterator[T] {
	return NewFilterIterator(s.base.Iterate(), s.pred)
}

// ContainsFunc reports whether the view yields an element equal to v under
// eq. The predicate is checked first: an element it rejects cannot be in the
// view, so the base is never touched. Otherwise the base's own membership
// check is used when available, falling back to a linear scan.
func (s *FilterSequence[T]) ContainsFunc(v T, eq func(T, T) bool) bool {
	if !s.pred(v) {
		return false
	}
	return ContainsFunc(s.base, v, eq)
}

// Values bridges the view to the standard iterator protocol.
func (s *FilterSequence[T]) Values() iter.Seq[T] {
	return Values[T](s)
}
