package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/slater/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Invalid verifies that empty, non-positive and overflowing shapes are rejected.
func TestNew_Invalid(t *testing.T) {
	_, err := shape.New()
	assert.ErrorIs(t, err, shape.ErrBadShape, "empty shape must error")

	_, err = shape.New(3, 0, 2)
	assert.ErrorIs(t, err, shape.ErrBadShape, "zero dimension must error")

	_, err = shape.New(-1)
	assert.ErrorIs(t, err, shape.ErrBadShape, "negative dimension must error")

	_, err = shape.New(math.MaxInt, 2)
	assert.ErrorIs(t, err, shape.ErrBadShape, "overflowing size must error")
}

// TestNew_StridesAndSize checks big-endian strides, size and variable positions.
func TestNew_StridesAndSize(t *testing.T) {
	s, err := shape.New(1, 3, 4, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 12, s.Size())
	assert.Equal(t, []int{12, 4, 1, 1}, []int{s.Stride(0), s.Stride(1), s.Stride(2), s.Stride(3)})
	assert.Equal(t, []int{1, 2}, s.Variable())
	assert.Equal(t, "[1 3 4 1]", s.String())
	assert.False(t, s.Uniform(3))
}

// TestNew_CopiesInput ensures the caller's slice is not retained.
func TestNew_CopiesInput(t *testing.T) {
	dims := []int{2, 5}
	s, err := shape.New(dims...)
	require.NoError(t, err)

	dims[0] = 7
	assert.Equal(t, 2, s.Dim(0), "Shape must not observe caller mutations")

	out := s.Dims()
	out[1] = 9
	assert.Equal(t, 5, s.Dim(1), "Dims must return a copy")
	assert.True(t, mustShape(t, 4, 4, 4).Uniform(4))
}

func mustShape(t *testing.T, dims ...int) *shape.Shape {
	t.Helper()
	s, err := shape.New(dims...)
	require.NoError(t, err)

	return s
}
