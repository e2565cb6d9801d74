// SPDX-License-Identifier: MIT

package operator

import (
	"context"
	"fmt"

	"github.com/katalvlaran/slater/indexset"
	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
)

// ApplyTwoBody returns c' = (Σ_{p,q,r,s} u[p,q,r,s] a†_p a†_q a_s a_r) c over
// the determinants of sp. No ½ prefactor is applied.
// MAIN DESCRIPTION:
//   - For every determinant D and every ordered pair (r,s) of distinct
//     occupied orbitals, every (p,q) with non-zero u is applied as an
//     operator string; Pauli-blocked strings vanish.
//
// Errors:
//   - ErrNilBasis, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ctx.Err().
//
// Complexity:
//   - Time O(|basis| · n² · l² · n), Space O(workers · |basis| + l⁴).
func ApplyTwoBody(ctx context.Context, sp *occupation.Space, u *matrix.Tensor4, c *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if sp == nil {
		return nil, ErrNilBasis
	}
	cfg := newConfig(opts...)
	l := sp.L()
	if err := matrix.ValidateTensor4(u, l); err != nil {
		return nil, fmt.Errorf("operator.ApplyTwoBody: u: %w", err)
	}
	if err := matrix.ValidateVecLen(c, sp.Len()); err != nil {
		return nil, fmt.Errorf("operator.ApplyTwoBody: c: %w", err)
	}

	cv := c.Data()
	cfg.logger.DebugContext(ctx, "applying two-body operator",
		"states", sp.Len(),
		"orbitals", l,
		"workers", cfg.workers,
	)

	out, err := accumulate(ctx, sp, cfg, "two-body", func(k int, set indexset.IndexSet, acc []complex128) error {
		ck := cv[k]
		if ck == 0 {
			return nil
		}
		st := set.(occupation.State)
		occ := st.Orbitals()
		for _, r := range occ {
			for _, s := range occ {
				if r == s {
					continue
				}
				for p := 0; p < l; p++ {
					for q := 0; q < l; q++ {
						upqrs, err := u.At(p, q, r, s)
						if err != nil {
							return err
						}
						if upqrs == 0 || p == q {
							continue
						}
						next, sign, err := occupation.Apply(st,
							occupation.Create(p), occupation.Create(q),
							occupation.Annihilate(s), occupation.Annihilate(r))
						if err != nil {
							return err
						}
						if sign == 0 {
							continue
						}
						acc[next.Index()] += upqrs * complex(float64(sign), 0) * ck
					}
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("operator.ApplyTwoBody: %w", err)
	}

	return matrix.NewVectorFrom(out)
}
