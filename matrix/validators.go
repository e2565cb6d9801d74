// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep evaluators minimal by delegating shape/nil/hermiticity checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Hermiticity check runs O(n²) on the upper triangle and diagonal only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → values).

package matrix

import (
	"fmt"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and n×n.
// Errors: ErrNilMatrix if nil, ErrNonSquare if Rows != Cols,
// ErrDimensionMismatch if Rows != n.
// Complexity: O(1).
func ValidateSquare(m *Dense, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.r != n {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: want %d×%d, got %d×%d", n, n, m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that v is non-nil and has exactly n elements.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(v.data) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: want %d, got %d", n, len(v.data)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks |m[i][j] - conj(m[j][i])| <= eps for all i <= j.
// The diagonal must therefore be real within eps.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian (wrapped with coordinates).
// Complexity: O(n²).
func ValidateHermitian(m *Dense, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateHermitian", ErrNonSquare)
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// Compare the upper-triangle entry against the conjugated mirror.
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateHermitian(%d,%d)", i, j), ErrNotHermitian)
			}
		}
	}

	return nil
}

// ValidateTensor4 checks that t is non-nil and spans exactly l orbitals.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateTensor4(t *Tensor4, l int) error {
	if t == nil {
		return validatorErrorf("ValidateTensor4", ErrNilMatrix)
	}
	if t.l != l {
		return validatorErrorf(fmt.Sprintf("ValidateTensor4: want l=%d, got %d", l, t.l), ErrDimensionMismatch)
	}

	return nil
}
