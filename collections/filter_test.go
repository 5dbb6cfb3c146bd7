package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lijunyuCN/go-lazyseq/calm"
	"github.com/lijunyuCN/go-lazyseq/collections"
	"github.com/lijunyuCN/go-lazyseq/seq"
	"github.com/lijunyuCN/go-lazyseq/xerrors/errclass"
	"github.com/lijunyuCN/go-lazyseq/xerrors/stacktrace"
)

func isEven(n int) bool { return n%2 == 0 }

func isPositive(n int) bool { return n > 0 }

// positions walks the view from Start to End and returns every position
// visited.
func positions[T any](t *testing.T, v collections.Collection[T, int]) []int {
	t.Helper()
	var out []int
	for p := v.Start(); p != v.End(); p = v.After(p) {
		out = append(out, p)
	}
	return out
}

func TestFilterCollection_Example(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6})
	view := collections.Filter[int, int](base, isEven)

	assert.Equal(t, []int{2, 4, 6}, seq.Collect(view.Iterate()))

	start := view.Start()
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, view.At(start))

	next := view.After(start)
	assert.Equal(t, 3, next)
	assert.Equal(t, 4, view.At(next))

	assert.Equal(t, 3, view.Distance(view.Start(), view.End()))
	assert.Equal(t, -3, view.Distance(view.End(), view.Start()))
}

func TestFilterCollection_PositionRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     []int
		predicate seq.Predicate[int]
		expected  []int // base indices whose elements match, in order
	}{
		{
			name:      "even elements",
			input:     []int{1, 2, 3, 4, 5, 6},
			predicate: isEven,
			expected:  []int{1, 3, 5},
		},
		{
			name:      "leading and trailing rejects",
			input:     []int{1, 1, 4, 1, 6, 1, 1},
			predicate: isEven,
			expected:  []int{2, 4},
		},
		{
			name:      "all match",
			input:     []int{2, 4, 6},
			predicate: isEven,
			expected:  []int{0, 1, 2},
		},
		{
			name:      "none match",
			input:     []int{1, 3, 5},
			predicate: isEven,
			expected:  nil,
		},
		{
			name:      "empty base",
			input:     nil,
			predicate: isEven,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			base := collections.NewSliceCollection(tt.input)
			view := collections.Filter[int, int](base, tt.predicate)

			visited := positions[int](t, view)
			assert.Equal(t, tt.expected, visited)
			for _, p := range visited {
				assert.True(t, tt.predicate(view.At(p)))
			}
		})
	}
}

func TestFilterCollection_EmptyView(t *testing.T) {
	t.Parallel()

	t.Run("empty base", func(t *testing.T) {
		t.Parallel()
		view := collections.Filter[int, int](collections.NewSliceCollection[int](nil), isEven)
		assert.Equal(t, view.End(), view.Start())

		it := view.Iterate()
		_, ok := it.Next()
		assert.False(t, ok)
	})

	t.Run("predicate rejects everything", func(t *testing.T) {
		t.Parallel()
		view := collections.Filter[int, int](collections.NewSliceCollection([]int{1, 3, 5}), isEven)
		assert.Equal(t, view.End(), view.Start())

		it := view.Iterate()
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestBidiFilterCollection_StepSymmetry(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	view := collections.FilterBidirectional[int, int](base, func(n int) bool { return n%3 == 0 })

	visited := positions[int](t, view)
	require.NotEmpty(t, visited)

	for _, p := range visited {
		assert.Equal(t, p, view.Before(view.After(p)))
	}
	for _, p := range append(visited[1:], view.End()) {
		assert.Equal(t, p, view.After(view.Before(p)))
	}
}

func TestFilterCollection_DistanceAntisymmetry(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6, 7, 8})
	view := collections.FilterBidirectional[int, int](base, isEven)

	all := append(positions[int](t, view), view.End())
	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, view.Distance(a, b), -view.Distance(b, a))
		}
	}
}

func TestFilterCollection_AdvanceInverse(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	view := collections.FilterBidirectional[int, int](base, isEven)

	all := append(positions[int](t, view), view.End())
	for i, from := range all {
		for j, to := range all {
			n := j - i
			assert.Equal(t, to, view.Advance(from, n))
			assert.Equal(t, from, view.Advance(view.Advance(from, n), -n))
		}
	}
}

func TestFilterCollection_AdvanceLimited(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	view := collections.FilterBidirectional[int, int](base, isEven)

	// absence exactly when the unlimited walk would pass the limit
	all := append(positions[int](t, view), view.End())
	last := len(all) - 1
	for i := range all {
		for limitIdx := range all {
			limit := all[limitIdx]

			for n := 0; n <= last-i; n++ {
				got, ok := view.AdvanceLimited(all[i], n, limit)
				if limitIdx >= i && limitIdx < i+n {
					assert.False(t, ok)
				} else {
					require.True(t, ok)
					assert.Equal(t, all[i+n], got)
				}
			}
			for n := -1; n >= -i; n-- {
				got, ok := view.AdvanceLimited(all[i], n, limit)
				if limitIdx <= i && limitIdx > i+n {
					assert.False(t, ok)
				} else {
					require.True(t, ok)
					assert.Equal(t, all[i+n], got)
				}
			}
		}
	}
}

func TestFilterCollection_Chained(t *testing.T) {
	t.Parallel()
	input := []int{-2, -1, 0, 1, 2, 3, 4}
	base := collections.NewSliceCollection(input)

	chained := collections.Filter[int, int](base, isPositive).Filter(isEven)
	combined := collections.Filter[int, int](base, func(n int) bool { return isPositive(n) && isEven(n) })

	assert.Equal(t, []int{2, 4}, seq.Collect(chained.Iterate()))
	assert.Equal(t, positions[int](t, combined), positions[int](t, chained))
	assert.Equal(t, combined.Start(), chained.Start())
}

func TestFilterCollection_Slice(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	view := collections.FilterBidirectional[int, int](base, isEven)

	sub := view.Slice(3, 8)
	assert.Equal(t, 3, sub.Start())
	assert.Equal(t, 8, sub.End())
	assert.Equal(t, []int{4, 6, 8}, seq.Collect(sub.Iterate()))

	// a slice of a bidirectional view steps backward too
	bidi, ok := sub.(collections.Bidirectional[int, int])
	require.True(t, ok)
	assert.Equal(t, 5, bidi.Before(7))
}

type forwardOnly struct {
	c collections.SliceCollection[int]
}

func (f forwardOnly) Start() int      { return f.c.Start() }
func (f forwardOnly) End() int        { return f.c.End() }
func (f forwardOnly) After(p int) int { return f.c.After(p) }
func (f forwardOnly) At(p int) int    { return f.c.At(p) }

func (f forwardOnly) Advance(p int, n int) int {
	if n < 0 {
		panic("forward-only collection cannot move backward")
	}
	return f.c.Advance(p, n)
}

func (f forwardOnly) AdvanceLimited(p int, n int, limit int) (int, bool) {
	if n < 0 {
		panic("forward-only collection cannot move backward")
	}
	return f.c.AdvanceLimited(p, n, limit)
}

func (f forwardOnly) Distance(from, to int) int {
	d := f.c.Distance(from, to)
	if d < 0 {
		panic("forward-only collection cannot measure backward distance")
	}
	return d
}

func (f forwardOnly) Slice(from, to int) collections.Collection[int, int] {
	return forwardOnly{c: f.c.Slice(from, to).(collections.SliceCollection[int])}
}

func (f forwardOnly) Iterate() seq.Iterator[int] { return f.c.Iterate() }
func (f forwardOnly) MinCount() int              { return f.c.MinCount() }

func TestFilterCollection_ForwardOnlyBase(t *testing.T) {
	t.Parallel()
	fw := forwardOnly{c: collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6})}
	view := collections.Filter[int, int](fw, isEven)

	// forward navigation is unaffected
	assert.Equal(t, []int{1, 3, 5}, positions[int](t, view))
	assert.Equal(t, 3, view.Distance(view.Start(), view.End()))

	start := view.Start()
	second := view.After(start)

	// backward movement must surface the base's own precondition
	assert.Panics(t, func() { view.Advance(second, -1) })
	assert.Panics(t, func() { view.AdvanceLimited(second, -1, start) })
	assert.Panics(t, func() { view.Distance(second, start) })
}

type probeRecorder struct {
	collections.SliceCollection[int]
	probes *int
}

func (r probeRecorder) AdvanceLimited(p int, n int, limit int) (int, bool) {
	*r.probes++
	return r.SliceCollection.AdvanceLimited(p, n, limit)
}

func TestFilterCollection_NegativeAdvanceProbesBase(t *testing.T) {
	t.Parallel()
	probes := 0
	rec := probeRecorder{
		SliceCollection: collections.NewSliceCollection([]int{1, 2, 3, 4, 5, 6}),
		probes:          &probes,
	}
	view := collections.Filter[int, int](rec, isEven)

	third := view.Advance(view.Start(), 2)
	probes = 0

	assert.Equal(t, view.After(view.Start()), view.Advance(third, -1))
	assert.Equal(t, 1, probes)
}

func TestFilterCollection_Preconditions(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{2, 3, 4})
	view := collections.FilterBidirectional[int, int](base, isEven)

	assert.Panics(t, func() { view.After(view.End()) })
	assert.Panics(t, func() { view.At(view.End()) })
	assert.Panics(t, func() { view.Before(view.Start()) })

	err := calm.Unpanic(func() error {
		view.After(view.End())
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, errclass.Misuse, errclass.GetClass(err))
	assert.NotEmpty(t, stacktrace.Extract(err))
}

func TestFilterCollection_MinCount(t *testing.T) {
	t.Parallel()
	base := collections.NewSliceCollection([]int{2, 4, 6})
	view := collections.Filter[int, int](base, isEven)

	// always zero: a better bound would cost predicate evaluations
	assert.Zero(t, view.MinCount())
	assert.Equal(t, 3, len(seq.Collect(view.Iterate())))
}

func TestFilterCollection_PredicateEvaluatedFresh(t *testing.T) {
	t.Parallel()
	evals := 0
	counting := func(n int) bool {
		evals++
		return isEven(n)
	}
	base := collections.NewSliceCollection([]int{1, 2, 3, 4})
	view := collections.Filter[int, int](base, counting)

	_ = positions[int](t, view)
	afterFirst := evals
	require.Positive(t, afterFirst)

	// nothing is cached between traversals
	_ = positions[int](t, view)
	assert.Equal(t, 2*afterFirst, evals)
}

func BenchmarkFilterCollectionTraversal(b *testing.B) {
	input := make([]int, 10000)
	for i := range input {
		input[i] = i
	}
	view := collections.Filter[int, int](collections.NewSliceCollection(input), isEven)

	for b.Loop() {
		for p := view.Start(); p != view.End(); p = view.After(p) {
			_ = view.At(p)
		}
	}
}
