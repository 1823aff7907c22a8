package herolist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntropyValidation(t *testing.T) {
	// a pass over 4 elements consumes 3 values
	_, err := NewEntropy(4, []float64{0.1, 0.2})
	require.ErrorIs(t, err, ErrInsufficientEntropy)

	e, err := NewEntropy(4, []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	require.NotNil(t, e)

	// nil sequence selects the self-sourced path
	e, err = NewEntropy(4, nil)
	require.NoError(t, err)
	require.NotNil(t, e)
}

func TestEntropyIndexFormula(t *testing.T) {
	e, err := NewEntropy(3, []float64{0.5, 0.0})
	require.NoError(t, err)

	// floor(0.5*3) = 1, then floor(0.0*2) = 0
	j, err := e.Index(3)
	require.NoError(t, err)
	require.Equal(t, 1, j)

	j, err = e.Index(2)
	require.NoError(t, err)
	require.Equal(t, 0, j)
}

func TestEntropySelfSourcedBounds(t *testing.T) {
	e, err := NewEntropy(100, nil)
	require.NoError(t, err)
	for span := 100; span >= 2; span-- {
		j, err := e.Index(span)
		require.NoError(t, err)
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, span)
	}
}
