package collections

import (
	"slices"

	"github.com/lijunyuCN/go-lazyseq/seq"
)

// SliceCollection is a bidirectional positional collection backed by a
// slice. Positions are absolute int indices into the original backing, so a
// sub-range shares the position space of the collection it was cut from.
// The backing is never mutated; copies of the value are independent views of
// the same immutable elements.
type SliceCollection[T any] struct {
	elems  []T
	lo, hi int
}

// NewSliceCollection builds a collection over a private copy of elems.
// Mutating elems afterwards does not affect the collection.
func NewSliceCollection[T any](elems []T) SliceCollection[T] {
	c := slices.Clone(elems)
	return SliceCollection[T]{elems: c, hi: len(c)}
}

func (c SliceCollection[T]) Start() int {
	return c.lo
}

func (c SliceCollection[T]) End() int {
	return c.hi
}

func (c SliceCollection[T]) After(p int) int {
	if p < c.lo || p >= c.hi {
		panic(misuse("slice collection: cannot advance past the end position"))
	}
	return p + 1
}

func (c SliceCollection[T]) Before(p int) int {
	if p <= c.lo || p > c.hi {
		panic(misuse("slice collection: cannot retreat before the start position"))
	}
	return p - 1
}

func (c SliceCollection[T]) At(p int) T {
	if p < c.lo || p >= c.hi {
		panic(misuse("slice collection: element access out of range"))
	}
	return c.elems[p]
}

func (c SliceCollection[T]) Advance(p int, n int) int {
	q := p + n
	if p < c.lo || p > c.hi || q < c.lo || q > c.hi {
		panic(misuse("slice collection: offset out of range"))
	}
	return q
}

func (c SliceCollection[T]) AdvanceLimited(p int, n int, limit int) (int, bool) {
	step := 1
	if n < 0 {
		step = -1
	}
	for ; n != 0; n -= step {
		if p == limit {
			return 0, false
		}
		if step > 0 {
			p = c.After(p)
		} else {
			p = c.Before(p)
		}
	}
	return p, true
}

func (c SliceCollection[T]) Distance(from, to int) int {
	if from < c.lo || from > c.hi || to < c.lo || to > c.hi {
		panic(misuse("slice collection: distance between out-of-range positions"))
	}
	return to - from
}

func (c SliceCollection[T]) Slice(from, to int) Collection[T, int] {
	if from < c.lo || to > c.hi || from > to {
		panic(misuse("slice collection: invalid sub-range bounds"))
	}
	return SliceCollection[T]{elems: c.elems, lo: from, hi: to}
}

func (c SliceCollection[T]) Iterate() seq.Iterator[T] {
	p := c.lo
	return seq.FromFunc(func() (T, bool) {
		if p >= c.hi {
			var zero T
			return zero, false
		}
		v := c.elems[p]
		p++
		return v, true
	})
}

// MinCount is exact for a slice-backed collection.
func (c SliceCollection[T]) MinCount() int {
	return c.hi - c.lo
}
