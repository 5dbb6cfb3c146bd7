package seq

import (
	"iter"
	"slices"
)

// FromSlice returns a multi-pass Sequence over a private copy of elems.
// Mutating elems afterwards does not affect the sequence.
func FromSlice[T any](elems []T) Sequence[T] {
	return sliceSequence[T]{elems: slices.Clone(elems)}
}

type sliceSequence[T any] struct {
	elems []T
}

func (s sliceSequence[T]) Iterate() Iterator[T] {
	return &sliceIterator[T]{elems: s.elems}
}

type sliceIterator[T any] struct {
	elems []T
	next  int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.next >= len(it.elems) {
		var zero T
		return zero, false
	}
	v := it.elems[it.next]
	it.next++
	return v, true
}

// FromFunc adapts a produce-next function to an Iterator.
// next must keep returning ok=false once it has reported exhaustion.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	return funcIterator[T](next)
}

type funcIterator[T any] func() (T, bool)

func (f funcIterator[T]) Next() (T, bool) {
	return f()
}

// FromSeq adapts a standard library sequence. Each Iterate starts a new pull
// over s; the source is multi-pass only if s itself is re-rangeable.
func FromSeq[T any](s iter.Seq[T]) Sequence[T] {
	return seqSequence[T]{s: s}
}

type seqSequence[T any] struct {
	s iter.Seq[T]
}

func (q seqSequence[T]) Iterate() Iterator[T] {
	next, stop := iter.Pull(q.s)
	return FromFunc(func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}
