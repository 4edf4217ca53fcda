package ndarray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromElem(t *testing.T) {
	a := FromElem(Ix2(7, 7), 678)
	v, err := a.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 678, v)

	require.NoError(t, a.Set(42, 3, 4))
	v, err = a.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	for v := range FromElem(Ix3(4, 5, 6), 0.0).Values() {
		assert.Zero(t, v)
	}
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice(Ix1(4), []int{3, 4, 5, 78})
	require.NoError(t, err)
	v, err := a.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 78, v)

	b, err := FromSlice(Ix2(2, 2), []int{1, 2, 3, 4})
	require.NoError(t, err)
	v, err = b.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = FromSlice(Ix2(2, 7), []int{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice(Shape{2, 3}, []int{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromSliceCopies(t *testing.T) {
	values := []int{1, 2}
	a, err := FromSlice(Shape{2}, values)
	require.NoError(t, err)
	values[0] = 9
	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestZeros(t *testing.T) {
	a := Zeros[string](Shape{2, 2})
	assert.Equal(t, []string{"", "", "", ""}, slices.Collect(a.Values()))
}

func TestFromFunc(t *testing.T) {
	a := FromFunc(Ix3(5, 2, 9), func(i []int) float64 {
		return float64(i[0] + i[1] + i[2])
	})

	for idx, v := range a.All() {
		assert.InDelta(t, float64(idx[0]+idx[1]+idx[2]), v, 1e-12)
	}

	v, err := a.Get(4, 1, 8)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, v, 1e-12)
}

func TestFromFuncNegativeSpan(t *testing.T) {
	a := FromFunc(D1(Span{Lo: -42, Hi: 42}), func(i []int) int { return i[0] })
	v, err := a.Get(-12)
	require.NoError(t, err)
	assert.Equal(t, -12, v)

	_, err = a.Get(42)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
