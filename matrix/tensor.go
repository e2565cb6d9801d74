// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Tensor4 holds two-body coefficients u[p,q,r,s] over l orbitals in a flat
// row-major buffer (offset = ((p*l+q)*l+r)*l+s).
type Tensor4 struct {
	l    int
	data []complex128 // len == l⁴
}

// NewTensor4 allocates a zero l×l×l×l tensor.
// Errors: ErrInvalidDimensions if l <= 0.
// Complexity: O(l⁴) time and memory.
func NewTensor4(l int) (*Tensor4, error) {
	if l <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Tensor4{l: l, data: make([]complex128, l*l*l*l)}, nil
}

// Dim returns the orbital count l.
func (t *Tensor4) Dim() int { return t.l }

// offset computes the flat offset or returns ErrOutOfRange.
func (t *Tensor4) offset(p, q, r, s int) (int, error) {
	for _, x := range [4]int{p, q, r, s} {
		if x < 0 || x >= t.l {
			return 0, ErrOutOfRange
		}
	}

	return ((p*t.l+q)*t.l+r)*t.l + s, nil
}

// At returns u[p,q,r,s] or ErrOutOfRange.
func (t *Tensor4) At(p, q, r, s int) (complex128, error) {
	off, err := t.offset(p, q, r, s)
	if err != nil {
		return 0, fmt.Errorf("Tensor4.At(%d,%d,%d,%d): %w", p, q, r, s, err)
	}

	return t.data[off], nil
}

// Set stores v at u[p,q,r,s].
// Errors: ErrOutOfRange for bounds, ErrNaNInf for non-finite v.
func (t *Tensor4) Set(p, q, r, s int, v complex128) error {
	off, err := t.offset(p, q, r, s)
	if err != nil {
		return fmt.Errorf("Tensor4.Set(%d,%d,%d,%d): %w", p, q, r, s, err)
	}
	if !isFinite(v) {
		return fmt.Errorf("Tensor4.Set(%d,%d,%d,%d): %w", p, q, r, s, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}
