package stack

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ef-ds/deque"
	"github.com/stretchr/testify/require"

	"github.com/onflow/herolist"
)

// TestPushPopScenario pins the basic LIFO contract: pushing 0,1,2 yields a
// top-to-bottom snapshot of [2 1 0], popping returns 2 and leaves [1 0].
func TestPushPopScenario(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int{2, 1, 0}, s.ToSlice())

	top, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, 2, top)
	require.Equal(t, []int{1, 0}, s.ToSlice())
}

// TestLIFOAgainstReferenceModel drives a long random push/pop sequence and
// cross-checks every result against a deque used as reference model.
func TestLIFOAgainstReferenceModel(t *testing.T) {
	s, err := New[int](WithReservedCapacity[int](16))
	require.NoError(t, err)
	var model deque.Deque

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10_000; i++ {
		if model.Len() == 0 || r.Intn(2) == 0 {
			v := r.Int()
			require.NoError(t, s.Push(v))
			model.PushBack(v)
		} else {
			expected, ok := model.PopBack()
			require.True(t, ok)
			actual, err := s.Pop()
			require.NoError(t, err)
			require.Equal(t, expected.(int), actual)
		}
		require.Equal(t, model.Len(), s.Size())
	}
}

func TestPopEmptyFails(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)

	_, err = s.Pop()
	require.ErrorIs(t, err, herolist.ErrEmptyContainer)
	require.Equal(t, 0, s.Size())

	_, err = s.Top()
	require.ErrorIs(t, err, herolist.ErrEmptyContainer)

	require.ErrorIs(t, s.Dup(), herolist.ErrEmptyContainer)
}

func TestMaxSize(t *testing.T) {
	s, err := New[int](WithMaxSize[int](2))
	require.NoError(t, err)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.ErrorIs(t, s.Push(3), herolist.ErrCapacityExceeded)
	require.Equal(t, []int{2, 1}, s.ToSlice())

	// dup is a push and obeys the same bound
	_, err = s.Pop()
	require.NoError(t, err)
	require.NoError(t, s.Dup())
	require.ErrorIs(t, s.Dup(), herolist.ErrCapacityExceeded)
}

func TestDupAndExchange(t *testing.T) {
	s, err := New[string]()
	require.NoError(t, err)

	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Dup())
	require.Equal(t, []string{"a", "a"}, s.ToSlice())

	require.NoError(t, s.Push("b"))
	require.NoError(t, s.Exchange())
	require.Equal(t, []string{"a", "b", "a"}, s.ToSlice())
}

func TestExchangeNeedsTwo(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)
	require.ErrorIs(t, s.Exchange(), herolist.ErrEmptyContainer)

	require.NoError(t, s.Push(1))
	require.ErrorIs(t, s.Exchange(), herolist.ErrEmptyContainer)
}

func TestRemoveAndContains(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)
	for _, v := range []int{2, 1, 2, 3, 2} {
		require.NoError(t, s.Push(v))
	}

	// head matches are spliced out together with interior ones
	require.True(t, s.Contains(2))
	require.True(t, s.Remove(2))
	require.Equal(t, []int{3, 1}, s.ToSlice())
	require.False(t, s.Contains(2))
	require.False(t, s.Remove(2))
	require.Equal(t, 2, s.Size())
}

// countingCollector records node lifecycle events for allocation accounting.
type countingCollector struct {
	allocated int
	recycled  int
	pooled    int
	discarded int
	poolSize  uint
}

func (c *countingCollector) OnNodeAllocated()           { c.allocated++ }
func (c *countingCollector) OnNodeRecycled()            { c.recycled++ }
func (c *countingCollector) OnNodePooled(poolSize uint) { c.pooled++; c.poolSize = poolSize }
func (c *countingCollector) OnNodeDiscarded()           { c.discarded++ }

// TestPoolRecycling checks the free-list invariant: at most reservedCapacity
// nodes are retained, removals beyond that are discarded, and later
// insertions reuse the retained nodes before allocating fresh ones.
func TestPoolRecycling(t *testing.T) {
	collector := &countingCollector{}
	s, err := New[int](
		WithReservedCapacity[int](2),
		WithMetrics[int](collector),
	)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	require.Equal(t, 3, collector.allocated)

	for i := 0; i < 3; i++ {
		_, err := s.Pop()
		require.NoError(t, err)
	}
	require.Equal(t, 2, collector.pooled)
	require.Equal(t, 1, collector.discarded)
	require.LessOrEqual(t, collector.poolSize, uint(2))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	require.Equal(t, 2, collector.recycled)
	require.Equal(t, 4, collector.allocated)
	require.Equal(t, []int{2, 1, 0}, s.ToSlice())
}

// TestPoolingDoesNotChangeSemantics replays one operation sequence with
// pooling disabled and enabled and requires identical observable results.
func TestPoolingDoesNotChangeSemantics(t *testing.T) {
	run := func(t *testing.T, s *LinkedStack[int]) []int {
		for i := 0; i < 10; i++ {
			require.NoError(t, s.Push(i))
		}
		for i := 0; i < 5; i++ {
			_, err := s.Pop()
			require.NoError(t, err)
		}
		s.Remove(2)
		for i := 10; i < 15; i++ {
			require.NoError(t, s.Push(i))
		}
		return s.ToSlice()
	}

	plain, err := New[int]()
	require.NoError(t, err)
	pooled, err := New[int](WithReservedCapacity[int](4))
	require.NoError(t, err)

	require.Equal(t, run(t, plain), run(t, pooled))
}

func TestClear(t *testing.T) {
	for _, purge := range []bool{true, false} {
		t.Run(fmt.Sprintf("purge=%t", purge), func(t *testing.T) {
			s, err := New[int](WithReservedCapacity[int](8))
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				require.NoError(t, s.Push(i))
			}

			s.Clear(purge)
			require.Equal(t, 0, s.Size())
			require.Empty(t, s.ToSlice())

			// cleared nodes were parked for reuse
			require.NoError(t, s.Push(7))
			top, err := s.Top()
			require.NoError(t, err)
			require.Equal(t, 7, top)
		})
	}
}

func TestFillAndAssign(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)

	require.NoError(t, s.Fill(3, 9))
	require.Equal(t, []int{9, 9, 9}, s.ToSlice())

	require.NoError(t, s.Assign(4, func(i int) int { return i * i }))
	// factory index 0 is the bottom
	require.Equal(t, []int{9, 4, 1, 0}, s.ToSlice())

	require.ErrorIs(t, s.Assign(-1, func(i int) int { return i }), herolist.ErrOutOfRange)

	bounded, err := New[int](WithMaxSize[int](2))
	require.NoError(t, err)
	require.ErrorIs(t, bounded.Fill(3, 0), herolist.ErrCapacityExceeded)
}

type cloneableValue struct {
	n int
}

func (v cloneableValue) Clone() cloneableValue {
	return cloneableValue{n: v.n}
}

func TestClone(t *testing.T) {
	t.Run("by assignment", func(t *testing.T) {
		s, err := New[int]()
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			require.NoError(t, s.Push(i))
		}

		dup, err := s.Clone(true, nil)
		require.NoError(t, err)
		require.Equal(t, s.ToSlice(), dup.ToSlice())

		// structural duplicate: mutating the clone leaves the source alone
		_, err = dup.Pop()
		require.NoError(t, err)
		require.Equal(t, 4, s.Size())
	})

	t.Run("with copier", func(t *testing.T) {
		s, err := New[int]()
		require.NoError(t, err)
		require.NoError(t, s.Push(1))
		require.NoError(t, s.Push(2))

		dup, err := s.Clone(false, func(x int) int { return x })
		require.NoError(t, err)
		require.Equal(t, []int{2, 1}, dup.ToSlice())
	})

	t.Run("with capability", func(t *testing.T) {
		s, err := New[cloneableValue]()
		require.NoError(t, err)
		require.NoError(t, s.Push(cloneableValue{n: 1}))

		dup, err := s.Clone(false, nil)
		require.NoError(t, err)
		require.Equal(t, s.ToSlice(), dup.ToSlice())
	})

	t.Run("missing capability", func(t *testing.T) {
		s, err := New[int]()
		require.NoError(t, err)
		require.NoError(t, s.Push(1))

		_, err = s.Clone(false, nil)
		require.ErrorIs(t, err, herolist.ErrMissingCapability)
	})
}

func TestString(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)
	require.Equal(t, "LinkedStack(size=0)[]", s.String())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}
	require.Equal(t, "LinkedStack(size=3)[2 1 0]", s.String())
}
