// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (wrapped with call-site
// context via %w); tests and callers match them with errors.Is. No public
// operation panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the detection site only.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or element) is outside
	// valid bounds. Public indexers (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a coefficient vector whose length differs from the basis size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotHermitian signals that m[i][j] != conj(m[j][i]) beyond the configured eps.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrNaNInf signals a NaN or ±Inf component in a complex value.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense, *Vector or *Tensor4 was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRagged indicates that a [][]complex128 literal has rows of differing length.
	ErrRagged = errors.New("matrix: rows have differing lengths")
)
