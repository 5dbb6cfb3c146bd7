// Package collections provides generic data structures and positional views
// over them. A position is an opaque comparable token into a Collection;
// navigating one outside its valid range is programmer error and panics with
// a classified error rather than returning a sentinel.
package collections

import (
	"errors"

	"github.com/lijunyuCN/go-lazyseq/seq"
	"github.com/lijunyuCN/go-lazyseq/xerrors"
	"github.com/lijunyuCN/go-lazyseq/xerrors/errclass"
	"github.com/lijunyuCN/go-lazyseq/xerrors/stacktrace"
)

// Collection describes forward positional access over an ordered collection
// of elements of type T addressed by positions of type P.
//
// Positions form a half-open range [Start, End): End is one step past the
// last element and is never a valid argument to At. Violating a navigation
// precondition (advancing past End, dereferencing End, offsetting out of
// range) panics with an errclass.Misuse error.
type Collection[T any, P comparable] interface {
	seq.Sequence[T]

	// Start returns the position of the first element, or End if empty.
	Start() P

	// End returns the past-the-end position.
	End() P

	// After returns the position following p. p must not be End.
	After(p P) P

	// At returns the element at p. p must not be End.
	At(p P) T

	// Advance returns the position n steps from p. The result must stay
	// within [Start, End]; a negative n requires backward support.
	Advance(p P, n int) P

	// AdvanceLimited is Advance that stops at limit: if the walk would
	// step past limit it returns ok=false instead. Landing exactly on
	// limit is not an overshoot.
	AdvanceLimited(p P, n int, limit P) (P, bool)

	// Distance returns the number of forward steps from `from` to `to`,
	// negative when `to` precedes `from`. Forward-only collections may
	// reject backward pairs.
	Distance(from, to P) int

	// Slice returns the sub-collection of positions [from, to). Positions
	// of the result are positions of the receiver; no elements are copied.
	// A bidirectional collection must return a bidirectional slice.
	Slice(from, to P) Collection[T, P]

	// MinCount returns a lower bound on the number of elements, computable
	// in O(1).
	MinCount() int
}

// Bidirectional is a Collection whose positions can also be stepped
// backwards.
type Bidirectional[T any, P comparable] interface {
	Collection[T, P]

	// Before returns the position preceding p. p must not be Start.
	Before(p P) P
}

// depth of stack to ignore so a misuse trace starts at the violating call.
const misuseStackDepth = 3

// misuse builds the classified, stack-carrying error that navigation
// preconditions panic with.
func misuse(msg string) error {
	err := errors.New(msg)
	err = xerrors.Extend(stacktrace.GetStack(misuseStackDepth, true), err)
	return errclass.WrapAs(err, errclass.Misuse)
}
