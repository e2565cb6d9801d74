package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadShape indicates an empty shape, a non-positive dimension, or a total
// size that does not fit into int.
var ErrBadShape = errors.New("shape: invalid shape")

// Shape is an immutable ordered list of positive dimension sizes.
// The zero value is not usable; construct with New.
type Shape struct {
	dims     []int // dimension sizes, never mutated after New
	strides  []int // strides[i] = Π_{j>i} dims[j]
	variable []int // positions with dims[i] > 1, ascending
	size     int   // Π dims
}

// New validates dims and returns a shared immutable Shape.
// The input slice is copied; later changes by the caller are not observed.
// Returns ErrBadShape (wrapped with the offending position) on invalid input.
// Complexity: O(k) for k dimensions.
func New(dims ...int) (*Shape, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("shape.New: no dimensions: %w", ErrBadShape)
	}
	s := &Shape{
		dims:    make([]int, len(dims)),
		strides: make([]int, len(dims)),
		size:    1,
	}
	copy(s.dims, dims)

	// Walk from least to most significant position accumulating strides.
	for i := len(dims) - 1; i >= 0; i-- {
		d := dims[i]
		if d <= 0 {
			return nil, fmt.Errorf("shape.New: dim[%d]=%d: %w", i, d, ErrBadShape)
		}
		s.strides[i] = s.size
		if s.size > math.MaxInt/d {
			return nil, fmt.Errorf("shape.New: size overflows int at dim[%d]: %w", i, ErrBadShape)
		}
		s.size *= d
	}
	for i, d := range s.dims {
		if d > 1 {
			s.variable = append(s.variable, i)
		}
	}

	return s, nil
}

// Len returns the number of dimensions k.
func (s *Shape) Len() int { return len(s.dims) }

// Dim returns the size of dimension i. It panics if i is out of range, like
// a slice index.
func (s *Shape) Dim(i int) int { return s.dims[i] }

// Dims returns a copy of the dimension sizes.
func (s *Shape) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)

	return out
}

// Size returns the number of multi-indices Π dims.
func (s *Shape) Size() int { return s.size }

// Stride returns Π_{j>i} dims[j], the weight of position i in the compound index.
func (s *Shape) Stride(i int) int { return s.strides[i] }

// Variable returns the positions whose dimension is larger than one, in
// ascending order. Unit dimensions admit no change and never produce neighbors.
func (s *Shape) Variable() []int {
	out := make([]int, len(s.variable))
	copy(out, s.variable)

	return out
}

// Uniform reports whether every dimension equals d.
func (s *Shape) Uniform(d int) bool {
	for _, x := range s.dims {
		if x != d {
			return false
		}
	}

	return true
}

// String renders the shape as "[d0 d1 ...]".
func (s *Shape) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = fmt.Sprint(d)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
