// Package matrix offers the dense complex storage consumed by the operator
// evaluator.
//
// The matrix package provides:
//
//   - Dense: a row-major l×l complex128 matrix for one-body coefficients h[p,q].
//   - Vector: a complex128 coefficient vector indexed by combinatorial rank.
//   - Tensor4: a flat l⁴ buffer for two-body coefficients u[p,q,r,s].
//   - Validators (square, length, hermiticity) shared by every evaluator.
//
// All accessors bounds-check and return sentinel errors (ErrOutOfRange,
// ErrNaNInf, ...) instead of panicking. Matrices are caller-owned; evaluators
// only read entries by (row,col) / (index) and write by (index).
package matrix
