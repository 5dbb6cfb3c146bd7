package collections

import (
	"github.com/lijunyuCN/go-lazyseq/seq"
)

// FilterCollection is a lazy filtering view over a base Collection. It keeps
// the base's position type and position space: a position is valid in the
// view iff it is valid in the base and is either End or addresses a matching
// element. Navigation skips non-matching positions as it goes; nothing is
// precomputed or cached, and the predicate is re-evaluated on every step.
type FilterCollection[T any, P comparable] struct {
	base Collection[T, P]
	pred seq.Predicate[T]
}

// Filter returns a view of the elements of base that satisfy p. Filtering an
// already filtered view does not stack wrappers: the result views the
// original base through the conjunction of both predicates.
func Filter[T any, P comparable](base Collection[T, P], p seq.Predicate[T]) *FilterCollection[T, P] {
	switch fc := base.(type) {
	case *FilterCollection[T, P]:
		return &FilterCollection[T, P]{base: fc.base, pred: fc.pred.And(p)}
	case *BidiFilterCollection[T, P]:
		return &FilterCollection[T, P]{base: fc.base, pred: fc.pred.And(p)}
	}
	return &FilterCollection[T, P]{base: base, pred: p}
}

// Start returns the earliest base position that is End or matches. Costs
// O(k) in the number of leading non-matching elements.
func (c *FilterCollection[T, P]) Start() P {
	p, end := c.base.Start(), c.base.End()
	for p != end && !c.pred(c.base.At(p)) {
		p = c.base.After(p)
	}
	return p
}

// End is the base's past-the-end position.
func (c *FilterCollection[T, P]) End() P {
	return c.base.End()
}

// After returns the next matching position following p. p must not be End.
func (c *FilterCollection[T, P]) After(p P) P {
	end := c.base.End()
	if p == end {
		panic(misuse("filter collection: cannot advance past the end position"))
	}
	// step at least once so the result is the next match, never p itself
	q := c.base.After(p)
	for q != end && !c.pred(c.base.At(q)) {
		q = c.base.After(q)
	}
	return q
}

// At returns the base element at p. p must be a position reached through
// this view's navigation, so the element is already known to match.
func (c *FilterCollection[T, P]) At(p P) T {
	return c.base.At(p)
}

// before returns the previous matching position. If p is the view's start,
// every earlier base position fails the predicate, so the walk runs into the
// base's own front precondition and traps there.
func (c *FilterCollection[T, P]) before(p P) P {
	b, ok := c.base.(Bidirectional[T, P])
	if !ok {
		panic(misuse("filter collection: base does not support backward movement"))
	}
	q := b.Before(p)
	for !c.pred(c.base.At(q)) {
		q = b.Before(q)
	}
	return q
}

// Advance returns the position n view steps from p. For negative n the
// base's own limited offset is probed first, so a forward-only base surfaces
// its precondition before any stepping happens.
func (c *FilterCollection[T, P]) Advance(p P, n int) P {
	if n >= 0 {
		for range n {
			p = c.After(p)
		}
		return p
	}
	c.base.AdvanceLimited(p, -1, c.base.Start())
	for range -n {
		p = c.before(p)
	}
	return p
}

// AdvanceLimited is Advance that refuses to pass limit, returning ok=false
// instead of overshooting. Landing exactly on limit is not an overshoot.
func (c *FilterCollection[T, P]) AdvanceLimited(p P, n int, limit P) (P, bool) {
	var zero P
	if n >= 0 {
		for range n {
			if p == limit {
				return zero, false
			}
			p = c.After(p)
		}
		return p, true
	}
	c.base.AdvanceLimited(p, -1, c.base.Start())
	for range -n {
		if p == limit {
			return zero, false
		}
		p = c.before(p)
	}
	return p, true
}

// Distance returns the number of view steps from `from` to `to`, negative
// when `to` precedes `from`. The base is consulted first so that an invalid
// pair (such as a backward distance on a forward-only base) traps exactly as
// it would on the base itself; its sign then picks the walk direction, since
// positions are opaque and carry no ordering of their own.
func (c *FilterCollection[T, P]) Distance(from, to P) int {
	if c.base.Distance(from, to) < 0 {
		return -c.steps(to, from)
	}
	return c.steps(from, to)
}

func (c *FilterCollection[T, P]) steps(from, to P) int {
	n := 0
	for from != to {
		from = c.After(from)
		n++
	}
	return n
}

// Slice returns a filtering view over the base's own sub-range; filtering
// composes with sub-ranging structurally, no elements are copied.
func (c *FilterCollection[T, P]) Slice(from, to P) Collection[T, P] {
	return Filter(c.base.Slice(from, to), c.pred)
}

// Iterate returns a fresh single-pass iterator over the matching elements.
func (c *FilterCollection[T, P]) Iterate() seq.Iterator[T] {
	return seq.NewFilterIterator(c.base.Iterate(), c.pred)
}

// MinCount reports 0: any better lower bound would require evaluating the
// predicate, which an O(1) property must not do.
func (c *FilterCollection[T, P]) MinCount() int {
	return 0
}

// Filter narrows the view further over the same base with the conjunction of
// the predicates, keeping the wrapper depth at one.
func (c *FilterCollection[T, P]) Filter(p seq.Predicate[T]) *FilterCollection[T, P] {
	return &FilterCollection[T, P]{base: c.base, pred: c.pred.And(p)}
}

// BidiFilterCollection is a FilterCollection over a bidirectional base,
// adding backward stepping.
type BidiFilterCollection[T any, P comparable] struct {
	FilterCollection[T, P]
}

// FilterBidirectional returns a bidirectional view of the elements of base
// that satisfy p, collapsing an already filtered base into a predicate
// conjunction the same way Filter does.
func FilterBidirectional[T any, P comparable](base Bidirectional[T, P], p seq.Predicate[T]) *BidiFilterCollection[T, P] {
	if fc, ok := base.(*BidiFilterCollection[T, P]); ok {
		return &BidiFilterCollection[T, P]{FilterCollection[T, P]{base: fc.base, pred: fc.pred.And(p)}}
	}
	return &BidiFilterCollection[T, P]{FilterCollection[T, P]{base: base, pred: p}}
}

// Before returns the previous matching position. p must not be the view's
// start position; retreating from it runs into the base's front precondition.
func (c *BidiFilterCollection[T, P]) Before(p P) P {
	return c.before(p)
}

// Slice returns a bidirectional filtering view over the base's sub-range.
func (c *BidiFilterCollection[T, P]) Slice(from, to P) Collection[T, P] {
	sub := c.base.Slice(from, to).(Bidirectional[T, P])
	return FilterBidirectional(sub, c.pred)
}

// Filter narrows the view further over the same base.
func (c *BidiFilterCollection[T, P]) Filter(p seq.Predicate[T]) *BidiFilterCollection[T, P] {
	return &BidiFilterCollection[T, P]{FilterCollection[T, P]{base: c.base, pred: c.pred.And(p)}}
}
