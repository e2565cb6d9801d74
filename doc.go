// Package slater enumerates many-body basis states and applies one- and
// two-body operators to coefficient vectors expressed in those bases.
//
// What is in the box?
//
//   - Multi-index (product) states over a mixed-radix Shape, with lazy one-
//     and two-position neighbor enumerators
//   - Slater determinants as strictly increasing occupation tuples, with
//     lexicographic successor, closed-form rank/unrank and fermionic phases
//   - A shared IndexSet contract so evaluators are written once
//   - A one-body evaluator c' = Σ h[p,q] a†_p a_q c over any basis, and a
//     two-body evaluator over determinant bases
//
// Subpackages:
//
//	shape/      — mixed-radix dimensions, strides and variable positions
//	dense/      — MultiIndexState, its iterators and the product Basis
//	occupation/ — Space, determinant State, neighbors, operator strings
//	indexset/   — IndexSet, Enumerator, Neighbor, Basis contracts
//	matrix/     — complex Dense, Vector and Tensor4 with validators
//	operator/   — ApplyOneBody, EvalSlaterOneBody, ApplyTwoBody
//	cmd/slater  — command-line front end over YAML problem files
//
// Quick example: a particle hopping 0 → 2 past an occupied orbital 1.
//
//	h, _ := matrix.NewDense(3, 3)
//	_ = h.Set(2, 0, 1)
//	c, _ := matrix.Unit(3, 0)                    // |0 1⟩
//	out, _ := operator.EvalSlaterOneBody(c, h, 2) // -|1 2⟩
//
//	go get github.com/katalvlaran/slater
package slater
