package seq

// Transformation maps an element of one type to another.
type Transformation[S, T any] func(S) T

// Transform returns a lazy view that applies t to each element of s.
func Transform[S, T any](t Transformation[S, T], s Sequence[S]) Sequence[T] {
	return transformSequence[S, T]{base: s, fn: t}
}

type transformSequence[S, T any] struct {
	base Sequence[S]
	fn   Transformation[S, T]
}

func (s transformSequence[S, T]) Iterate() Iterator[T] {
	it := s.base.Iterate()
	return FromFunc(func() (T, bool) {
		v, ok := it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		return s.fn(v), true
	})
}
