package dense_test

import (
	"testing"

	"github.com/katalvlaran/slater/dense"
	"github.com/katalvlaran/slater/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t testing.TB, dims ...int) *shape.Shape {
	t.Helper()
	s, err := shape.New(dims...)
	require.NoError(t, err)

	return s
}

// TestFromZeros verifies the all-zero state and its compound index.
func TestFromZeros(t *testing.T) {
	st, err := dense.FromZeros(mustShape(t, 3, 4, 5))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0}, st.Indices())
	assert.Equal(t, 0, st.Compound())

	_, err = dense.FromZeros(nil)
	assert.ErrorIs(t, err, dense.ErrNilShape)
}

// TestFromIndicesAndCompound walks every tuple of [3 4 5] in nested-loop order
// and checks that the compound index counts 0,1,2,… and decodes back.
func TestFromIndicesAndCompound(t *testing.T) {
	s := mustShape(t, 3, 4, 5)
	counter := 0
	for p := 0; p < 3; p++ {
		for q := 0; q < 4; q++ {
			for r := 0; r < 5; r++ {
				st, err := dense.FromIndices([]int{p, q, r}, s)
				require.NoError(t, err)
				back, err := dense.FromCompound(counter, s)
				require.NoError(t, err)

				assert.Equal(t, counter, st.Compound())
				assert.Equal(t, st.Indices(), back.Indices())
				assert.True(t, st.Equal(back), "value equality across constructors")
				counter++
			}
		}
	}
	assert.Equal(t, s.Size(), counter)
}

// TestRoundTrip checks fromCompound(fromIndices(v).compound).indices == v for
// several shapes, including unit dimensions.
func TestRoundTrip(t *testing.T) {
	for _, dims := range [][]int{{1}, {7}, {2, 2, 2}, {1, 3, 4, 1}, {5, 1, 3}} {
		s := mustShape(t, dims...)
		for k := 0; k < s.Size(); k++ {
			st, err := dense.FromCompound(k, s)
			require.NoError(t, err)
			again, err := dense.FromIndices(st.Indices(), s)
			require.NoError(t, err)
			assert.Equal(t, k, again.Compound(), "shape %v compound %d", dims, k)
		}
	}
}

// TestOutOfRange verifies IndexOutOfRange for bad tuples and compounds.
func TestOutOfRange(t *testing.T) {
	s := mustShape(t, 3, 4)

	_, err := dense.FromIndices([]int{3, 0}, s)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	_, err = dense.FromIndices([]int{0, -1}, s)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	_, err = dense.FromIndices([]int{0}, s)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfRange, "length mismatch")

	_, err = dense.FromCompound(12, s)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	_, err = dense.FromCompound(-1, s)
	assert.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	_, err = dense.FromIndices([]int{0}, nil)
	assert.ErrorIs(t, err, dense.ErrNilShape)
}

// TestStateIsValue ensures returned slices are copies and input is not retained.
func TestStateIsValue(t *testing.T) {
	s := mustShape(t, 3, 4)
	in := []int{1, 2}
	st, err := dense.FromIndices(in, s)
	require.NoError(t, err)

	in[0] = 0
	out := st.Indices()
	out[1] = 0
	assert.Equal(t, []int{1, 2}, st.Indices())
	assert.Equal(t, 6, st.Index())
	assert.Equal(t, "[1 2]#6", st.String())
}
