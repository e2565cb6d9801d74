// SPDX-License-Identifier: MIT

package operator

import (
	"context"
	"fmt"

	"github.com/katalvlaran/slater/indexset"
	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
)

// ApplyOneBody returns c' = (Σ_{p,q} h[p,q] a†_p a_q) c over basis b.
// MAIN DESCRIPTION:
//   - Representation-agnostic: b may be an *occupation.Space (fermionic
//     determinants, signed neighbors) or a *dense.Basis (product states,
//     unsigned neighbors).
//
// Implementation:
//   - Stage 1: validate h (l×l, l = b.Orbitals()), c (len b.Len()), and
//     optionally hermiticity.
//   - Stage 2: for every state D with c[D] ≠ 0, add the diagonal term
//     Σ_{q∈D} h[q,q]·c[D] into c'[D] and, for every one-body neighbor D'
//     (q → p, sign σ), h[p,q]·σ·c[D] into c'[D'].
//   - Stage 3: sum partition partials (see WithWorkers).
//
// Errors:
//   - ErrNilBasis, matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch, matrix.ErrNotHermitian, ctx.Err().
//
// Complexity:
//   - Time O(|basis| · neighbors · k), Space O(workers · |basis| + l²).
func ApplyOneBody(ctx context.Context, b indexset.Basis, h *matrix.Dense, c *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if b == nil {
		return nil, ErrNilBasis
	}
	cfg := newConfig(opts...)
	l := b.Orbitals()
	if err := matrix.ValidateSquare(h, l); err != nil {
		return nil, fmt.Errorf("operator.ApplyOneBody: h: %w", err)
	}
	if err := matrix.ValidateVecLen(c, b.Len()); err != nil {
		return nil, fmt.Errorf("operator.ApplyOneBody: c: %w", err)
	}
	if cfg.checkHermitian {
		if err := matrix.ValidateHermitian(h, cfg.hermitianEps); err != nil {
			return nil, fmt.Errorf("operator.ApplyOneBody: h: %w", err)
		}
	}

	hv, cv := flatten(h), c.Data()
	cfg.logger.DebugContext(ctx, "applying one-body operator",
		"states", b.Len(),
		"orbitals", l,
		"workers", cfg.workers,
	)

	out, err := accumulate(ctx, b, cfg, "one-body", func(k int, s indexset.IndexSet, acc []complex128) error {
		ck := cv[k]
		if ck == 0 {
			return nil // every contribution of D is proportional to c[D]
		}
		// p == q: no orbital change.
		for _, q := range s.Orbitals() {
			acc[k] += hv[q*l+q] * ck
		}
		// p != q: single excitations with their phase.
		e := s.OneBodyNeighbors()
		for nb, ok := e.Next(); ok; nb, ok = e.Next() {
			p, q := nb.Excitation.Particles[0], nb.Excitation.Holes[0]
			hpq := hv[p*l+q]
			if hpq == 0 {
				continue
			}
			acc[nb.State.Index()] += hpq * complex(float64(nb.Sign), 0) * ck
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("operator.ApplyOneBody: %w", err)
	}

	return matrix.NewVectorFrom(out)
}

// EvalSlaterOneBody applies Σ h[p,q] a†_p a_q to c over the determinants of
// n particles in l = h.Rows() orbitals, c being indexed by combinatorial rank.
// Errors: occupation.ErrConfiguration for n == 0 or n >= l, plus the errors
// of ApplyOneBody.
func EvalSlaterOneBody(c *matrix.Vector, h *matrix.Dense, n int, opts ...Option) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return nil, fmt.Errorf("operator.EvalSlaterOneBody: h: %w", err)
	}
	sp, err := occupation.NewSpace(n, h.Rows())
	if err != nil {
		return nil, fmt.Errorf("operator.EvalSlaterOneBody: %w", err)
	}

	return ApplyOneBody(context.Background(), sp, h, c, opts...)
}

// flatten copies a validated matrix into a row-major slice for the hot loop.
func flatten(h *matrix.Dense) []complex128 {
	r, c := h.Shape()
	out := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j], _ = h.At(i, j) // in range by construction
		}
	}

	return out
}
