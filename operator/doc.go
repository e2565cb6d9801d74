// Package operator applies one- and two-body operators to coefficient vectors
// expressed in a many-body basis.
//
// What:
//
//   - ApplyOneBody computes c' = (Σ_{p,q} h[p,q] a†_p a_q) c for any
//     indexset.Basis. It is written once against the IndexSet abstraction and
//     serves both occupation (Slater determinant) and dense (product) bases.
//   - EvalSlaterOneBody is the determinant-basis shortcut taking n and
//     deriving l from h.
//   - ApplyTwoBody computes c' = (Σ_{p,q,r,s} u[p,q,r,s] a†_p a†_q a_s a_r) c
//     on an occupation basis (no ½ prefactor; scale u as needed).
//
// How:
//
//   - Every basis state D is visited in successor order. The diagonal term
//     adds Σ_{q∈D} h[q,q]·c[D] to c'[D]; every one-body neighbor D' of D
//     (particle q → p with phase σ) adds h[p,q]·σ·c[D] to c'[D'].
//   - Contributions of different basis states are independent. WithWorkers
//     partitions the basis range, accumulates one partial vector per
//     partition concurrently and sums them in partition order.
//
// Errors:
//
//   - occupation.ErrConfiguration: zero particles or too few orbitals.
//   - matrix.ErrDimensionMismatch / ErrNonSquare / ErrNilMatrix: operands that
//     do not match the basis.
//   - matrix.ErrNotHermitian: with WithHermitianCheck, a non-Hermitian h.
//   - ErrNilBasis, and ctx.Err() on cancellation.
package operator
