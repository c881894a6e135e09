package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ds, err := New(2, []float64{0, 0, 0, 1, 10, 0}, []string{"a", "b", "c"})
		require.NoError(t, err)

		assert.Equal(t, 3, ds.Len())
		assert.Equal(t, 2, ds.Dimension())
		assert.Equal(t, []float64{0, 1}, ds.Point(1))
		assert.Equal(t, []float64{10, 0}, ds.Point(2))
		assert.True(t, ds.HasLabels())
		assert.Equal(t, "c", ds.Label(2))
	})

	t.Run("label out of range", func(t *testing.T) {
		ds, err := New(1, []float64{1, 2}, []string{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, "", ds.Label(2))
		assert.Equal(t, "", ds.Label(-1))
	})

	t.Run("unlabeled", func(t *testing.T) {
		ds, err := New(1, []float64{1, 2}, nil)
		require.NoError(t, err)
		assert.False(t, ds.HasLabels())
		assert.Equal(t, "", ds.Label(0))
		assert.Nil(t, ds.Labels())
	})

	t.Run("invalid dimension", func(t *testing.T) {
		_, err := New(0, []float64{1}, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := New(2, nil, nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("ragged flat slice", func(t *testing.T) {
		_, err := New(2, []float64{1, 2, 3}, nil)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, -1, dm.Index)
		assert.Equal(t, 3, dm.Actual)
	})

	t.Run("label count", func(t *testing.T) {
		_, err := New(1, []float64{1, 2}, []string{"only-one"})
		var lc *ErrLabelCount
		require.ErrorAs(t, err, &lc)
		assert.Equal(t, 2, lc.Points)
		assert.Equal(t, 1, lc.Labels)
	})
}

func TestFromRows(t *testing.T) {
	rows := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
	ds, err := FromRows(rows, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, []float64{0, 0, 0, 1, 10, 0, 10, 1}, ds.Coords())

	// Rows are copied.
	rows[0][0] = 99
	assert.Equal(t, 0.0, ds.Point(0)[0])

	t.Run("ragged", func(t *testing.T) {
		_, err := FromRows([][]float64{{1, 2}, {3}}, nil)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.Index)
		assert.Contains(t, err.Error(), "point 1")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromRows(nil, nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("zero-width rows", func(t *testing.T) {
		_, err := FromRows([][]float64{{}}, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestPointIsCapped(t *testing.T) {
	ds, err := New(2, []float64{1, 2, 3, 4}, nil)
	require.NoError(t, err)

	p := ds.Point(0)
	assert.Equal(t, 2, cap(p))
}
