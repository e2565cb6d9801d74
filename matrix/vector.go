// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	ctxVecAt  = "At"
	ctxVecSet = "Set"
	ctxVecAdd = "Add"
)

// vectorErrorf wraps an error with Vector method context and element index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense coefficient vector of complex128 amplitudes.
// Index i of a many-body coefficient vector is the rank of the i-th basis state.
type Vector struct {
	data []complex128 // len == n
}

// NewVector creates a zero vector of length n.
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]complex128, n)}, nil
}

// NewVectorFrom copies values into a new Vector.
// Errors: ErrInvalidDimensions for empty input, ErrNaNInf for non-finite values.
// Complexity: O(n).
func NewVectorFrom(values []complex128) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrInvalidDimensions
	}
	cp := make([]complex128, len(values))
	for i, v := range values {
		if !isFinite(v) {
			return nil, vectorErrorf(ctxVecSet, i, ErrNaNInf)
		}
		cp[i] = v
	}

	return &Vector{data: cp}, nil
}

// Unit returns the n-dimensional unit vector e_k.
// Errors: ErrInvalidDimensions if n <= 0, ErrOutOfRange if k ∉ [0,n).
func Unit(n, k int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	if err = v.Set(k, 1); err != nil {
		return nil, err
	}

	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at element i.
// Errors: ErrOutOfRange for bounds, ErrNaNInf for non-finite x.
func (v *Vector) Set(i int, x complex128) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	if !isFinite(x) {
		return vectorErrorf(ctxVecSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Add accumulates x into element i (v[i] += x).
// Errors: ErrOutOfRange for bounds.
func (v *Vector) Add(i int, x complex128) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecAdd, i, ErrOutOfRange)
	}
	v.data[i] += x

	return nil
}

// Data returns a copy of the backing slice.
// Complexity: O(n).
func (v *Vector) Data() []complex128 {
	cp := make([]complex128, len(v.data))
	copy(cp, v.data)

	return cp
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Data()}
}

// Norm returns the Euclidean norm sqrt(Σ|v_i|²).
// Complexity: O(n).
func (v *Vector) Norm() float64 {
	var sum float64
	for _, x := range v.data {
		a := cmplx.Abs(x)
		sum += a * a
	}

	return math.Sqrt(sum)
}
