package stack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/herolist"
)

func drain[T any](it *Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func TestIteratorOrder(t *testing.T) {
	s := fixture(t)

	it := s.Iterator()
	require.Equal(t, []int{4, 3, 2, 1, 0}, drain(it))

	// one-shot: exhausted until reset
	_, ok := it.Next()
	require.False(t, ok)
	it.Reset()
	require.Equal(t, []int{4, 3, 2, 1, 0}, drain(it))
}

func TestIteratorEmpty(t *testing.T) {
	s, err := New[int]()
	require.NoError(t, err)

	it := s.Iterator()
	_, ok := it.Next()
	require.False(t, ok)
	require.ErrorIs(t, it.Remove(), herolist.ErrForeignNode)
}

func TestIteratorRemove(t *testing.T) {
	t.Run("first element", func(t *testing.T) {
		s := fixture(t)
		it := s.Iterator()

		_, ok := it.Next()
		require.True(t, ok)
		require.NoError(t, it.Remove())
		require.Equal(t, []int{3, 2, 1, 0}, s.ToSlice())

		// the cursor continues past the removed element
		require.Equal(t, []int{3, 2, 1, 0}, drain(it))
	})

	t.Run("interior element", func(t *testing.T) {
		s := fixture(t)
		it := s.Iterator()

		it.Next()
		it.Next()
		require.NoError(t, it.Remove())
		require.Equal(t, []int{4, 2, 1, 0}, s.ToSlice())
		require.Equal(t, 4, s.Size())
		require.Equal(t, []int{2, 1, 0}, drain(it))
	})

	t.Run("every element", func(t *testing.T) {
		s := fixture(t)
		it := s.Iterator()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			require.NoError(t, it.Remove())
		}
		require.Equal(t, 0, s.Size())
		require.Empty(t, s.ToSlice())
	})

	t.Run("double remove fails", func(t *testing.T) {
		s := fixture(t)
		it := s.Iterator()

		it.Next()
		require.NoError(t, it.Remove())
		require.ErrorIs(t, it.Remove(), herolist.ErrForeignNode)
	})
}

func TestIteratorReuse(t *testing.T) {
	s, err := New[int](WithIteratorReuse[int]())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Push(i))
	}

	first := s.Iterator()
	first.Next()

	// the same object is handed back, reset
	second := s.Iterator()
	require.Same(t, first, second)
	require.Equal(t, []int{2, 1, 0}, drain(second))
}

func TestIteratorFresh(t *testing.T) {
	s := fixture(t)

	first := s.Iterator()
	second := s.Iterator()
	require.NotSame(t, first, second)
}
