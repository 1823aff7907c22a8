package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/herolist"
)

func TestNodeOf(t *testing.T) {
	l := makeList(t, []int{0, 1, 2, 1, 0})

	n, err := l.NodeOf(1)
	require.NoError(t, err)
	require.Same(t, l.Head().Next(), n)

	// forward search from an explicit start skips earlier matches
	later, err := l.NodeOf(1, n.Next())
	require.NoError(t, err)
	require.NotSame(t, n, later)
	require.Same(t, l.Tail().Prev(), later)

	missing, err := l.NodeOf(42)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestLastNodeOf(t *testing.T) {
	l := makeList(t, []int{0, 1, 2, 1, 0})

	n, err := l.LastNodeOf(1)
	require.NoError(t, err)
	require.Same(t, l.Tail().Prev(), n)

	earlier, err := l.LastNodeOf(1, n.Prev())
	require.NoError(t, err)
	require.Same(t, l.Head().Next(), earlier)
}

// TestSearchCircularTerminates checks that searching a circular list for an
// absent value visits exactly one full loop instead of cycling forever.
func TestSearchCircularTerminates(t *testing.T) {
	l := makeList(t, []int{0, 1, 2})
	l.Close()

	n, err := l.NodeOf(42)
	require.NoError(t, err)
	require.Nil(t, n)

	n, err = l.LastNodeOf(42)
	require.NoError(t, err)
	require.Nil(t, n)

	// a mid-list start still covers the whole loop
	n, err = l.NodeOf(0, l.Tail())
	require.NoError(t, err)
	require.Same(t, l.Head(), n)
}

func TestSearchForeignStart(t *testing.T) {
	l := makeList(t, []int{0, 1})
	other := makeList(t, []int{0})

	_, err := l.NodeOf(0, other.Head())
	require.ErrorIs(t, err, herolist.ErrForeignNode)

	_, err = l.LastNodeOf(0, other.Head())
	require.ErrorIs(t, err, herolist.ErrForeignNode)
}

func TestListRemove(t *testing.T) {
	l := makeList(t, []int{2, 1, 2, 3, 2})

	require.True(t, l.Contains(2))
	require.True(t, l.Remove(2))
	require.Equal(t, []int{1, 3}, l.ToSlice())
	require.False(t, l.Contains(2))
	require.False(t, l.Remove(2))
}

func TestListRemoveCircular(t *testing.T) {
	l := makeList(t, []int{2, 1, 2})
	l.Close()

	require.True(t, l.Remove(2))
	require.Equal(t, []int{1}, l.ToSlice())
	require.True(t, l.IsCircular())
	require.Same(t, l.Head(), l.Head().Next())

	require.True(t, l.Remove(1))
	require.Equal(t, 0, l.Size())
}

func TestCustomEquals(t *testing.T) {
	type record struct {
		id   int
		name string
	}
	l, err := New[record](WithEquals[record](func(a, b record) bool { return a.id == b.id }))
	require.NoError(t, err)
	require.NoError(t, l.Append(record{id: 1, name: "x"}))
	require.NoError(t, l.Append(record{id: 2, name: "y"}))

	require.True(t, l.Contains(record{id: 2}))
	require.True(t, l.Remove(record{id: 1}))
	require.Equal(t, 1, l.Size())
}
