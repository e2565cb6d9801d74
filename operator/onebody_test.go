package operator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/slater/dense"
	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
	"github.com/katalvlaran/slater/operator"
	"github.com/katalvlaran/slater/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteOneBody builds c' by applying every a†_p a_q string to every
// determinant.
func bruteOneBody(t *testing.T, sp *occupation.Space, h *matrix.Dense, c *matrix.Vector) []complex128 {
	t.Helper()
	l := sp.L()
	cv := c.Data()
	out := make([]complex128, sp.Len())
	for k := 0; k < sp.Len(); k++ {
		st, err := sp.Unrank(k)
		require.NoError(t, err)
		for p := 0; p < l; p++ {
			for q := 0; q < l; q++ {
				next, sign, err := occupation.Apply(st, occupation.Create(p), occupation.Annihilate(q))
				require.NoError(t, err)
				if sign == 0 {
					continue
				}
				out[next.Index()] += at(t, h, p, q) * complex(float64(sign), 0) * cv[k]
			}
		}
	}

	return out
}

func TestEvalSlaterOneBody_MatchesOperatorStrings(t *testing.T) {
	rng := newRand()
	for _, tc := range []struct{ n, l int }{{1, 4}, {2, 5}, {3, 6}, {4, 7}} {
		sp, err := occupation.NewSpace(tc.n, tc.l)
		require.NoError(t, err)
		h := randomHermitian(t, rng, tc.l)
		c := randomVector(t, rng, sp.Len())

		got, err := operator.EvalSlaterOneBody(c, h, tc.n)
		require.NoError(t, err)
		requireClose(t, bruteOneBody(t, sp, h, c), got.Data())
	}
}

func TestEvalSlaterOneBody_Diagonal(t *testing.T) {
	// h = diag(ε): every determinant is an eigenvector with Σ_{q∈D} ε_q.
	eps := []float64{1, 2, 4, 8, 16}
	h, err := matrix.NewDense(5, 5)
	require.NoError(t, err)
	for i, e := range eps {
		require.NoError(t, h.Set(i, i, complex(e, 0)))
	}
	sp, err := occupation.NewSpace(2, 5)
	require.NoError(t, err)
	c := randomVector(t, newRand(), sp.Len())

	got, err := operator.EvalSlaterOneBody(c, h, 2)
	require.NoError(t, err)

	cv := c.Data()
	want := make([]complex128, len(cv))
	for k := range cv {
		st, err := sp.Unrank(k)
		require.NoError(t, err)
		var e float64
		for _, o := range st.Orbitals() {
			e += eps[o]
		}
		want[k] = complex(e, 0) * cv[k]
	}
	requireClose(t, want, got.Data())
}

func TestEvalSlaterOneBody_IdentityCountsParticles(t *testing.T) {
	id, err := matrix.Identity(6)
	require.NoError(t, err)
	sp, err := occupation.NewSpace(3, 6)
	require.NoError(t, err)
	c := randomVector(t, newRand(), sp.Len())

	got, err := operator.EvalSlaterOneBody(c, id, 3)
	require.NoError(t, err)

	want := c.Data()
	for i := range want {
		want[i] *= 3
	}
	requireClose(t, want, got.Data())
}

func TestEvalSlaterOneBody_ZeroOperator(t *testing.T) {
	h, err := matrix.NewDense(10, 10)
	require.NoError(t, err)
	c, err := matrix.NewVector(120)
	require.NoError(t, err)

	got, err := operator.EvalSlaterOneBody(c, h, 3)
	require.NoError(t, err)
	require.Equal(t, 120, got.Len())
	assert.Zero(t, got.Norm())
}

func TestEvalSlaterOneBody_Hermitian(t *testing.T) {
	// ⟨x|Hy⟩ == ⟨Hx|y⟩ for Hermitian h.
	rng := newRand()
	h := randomHermitian(t, rng, 6)
	sp, err := occupation.NewSpace(3, 6)
	require.NoError(t, err)
	x := randomVector(t, rng, sp.Len())
	y := randomVector(t, rng, sp.Len())

	hx, err := operator.EvalSlaterOneBody(x, h, 3)
	require.NoError(t, err)
	hy, err := operator.EvalSlaterOneBody(y, h, 3)
	require.NoError(t, err)

	lhs := dot(x.Data(), hy.Data())
	rhs := dot(hx.Data(), y.Data())
	assert.InDelta(t, real(lhs), real(rhs), tol)
	assert.InDelta(t, imag(lhs), imag(rhs), tol)
}

func TestApplyOneBody_WorkersAgree(t *testing.T) {
	rng := newRand()
	h := randomHermitian(t, rng, 8)
	sp, err := occupation.NewSpace(3, 8)
	require.NoError(t, err)
	c := randomVector(t, rng, sp.Len())

	serial, err := operator.ApplyOneBody(context.Background(), sp, h, c)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 4, 200} {
		par, err := operator.ApplyOneBody(context.Background(), sp, h, c, operator.WithWorkers(w))
		require.NoError(t, err)
		requireClose(t, serial.Data(), par.Data())
	}
}

func TestApplyOneBody_DenseProductBasis(t *testing.T) {
	// Two distinguishable particles in l levels: H = h⊗I + I⊗h.
	const l = 4
	rng := newRand()
	h := randomHermitian(t, rng, l)
	s, err := shape.New(l, l)
	require.NoError(t, err)
	b, err := dense.NewBasis(s)
	require.NoError(t, err)
	c := randomVector(t, rng, b.Len())

	got, err := operator.ApplyOneBody(context.Background(), b, h, c)
	require.NoError(t, err)

	cv := c.Data()
	want := make([]complex128, l*l)
	for a := 0; a < l; a++ {
		for bb := 0; bb < l; bb++ {
			for x := 0; x < l; x++ {
				want[a*l+bb] += at(t, h, a, x)*cv[x*l+bb] + at(t, h, bb, x)*cv[a*l+x]
			}
		}
	}
	requireClose(t, want, got.Data())
}

func TestApplyOneBody_Errors(t *testing.T) {
	ctx := context.Background()
	sp, err := occupation.NewSpace(2, 4)
	require.NoError(t, err)
	h4, err := matrix.Identity(4)
	require.NoError(t, err)
	c6, err := matrix.NewVector(6)
	require.NoError(t, err)

	_, err = operator.ApplyOneBody(ctx, nil, h4, c6)
	assert.ErrorIs(t, err, operator.ErrNilBasis)

	h3, err := matrix.Identity(3)
	require.NoError(t, err)
	_, err = operator.ApplyOneBody(ctx, sp, h3, c6)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rect, err := matrix.NewDense(4, 3)
	require.NoError(t, err)
	_, err = operator.ApplyOneBody(ctx, sp, rect, c6)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = operator.ApplyOneBody(ctx, sp, nil, c6)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	c5, err := matrix.NewVector(5)
	require.NoError(t, err)
	_, err = operator.ApplyOneBody(ctx, sp, h4, c5)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	skew, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	require.NoError(t, skew.Set(0, 1, 1))
	_, err = operator.ApplyOneBody(ctx, sp, skew, c6, operator.WithHermitianCheck(1e-12))
	assert.ErrorIs(t, err, matrix.ErrNotHermitian)
	_, err = operator.ApplyOneBody(ctx, sp, skew, c6)
	assert.NoError(t, err, "hermiticity is only checked on request")
}

func TestEvalSlaterOneBody_Errors(t *testing.T) {
	h, err := matrix.Identity(4)
	require.NoError(t, err)
	c, err := matrix.NewVector(4)
	require.NoError(t, err)

	_, err = operator.EvalSlaterOneBody(c, h, 0)
	assert.ErrorIs(t, err, occupation.ErrConfiguration)
	_, err = operator.EvalSlaterOneBody(c, h, 4)
	assert.ErrorIs(t, err, occupation.ErrConfiguration)
	_, err = operator.EvalSlaterOneBody(c, nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = operator.EvalSlaterOneBody(c, h, 2) // C(4,2)=6 != 4
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestApplyOneBody_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sp, err := occupation.NewSpace(2, 6)
	require.NoError(t, err)
	h, err := matrix.Identity(6)
	require.NoError(t, err)
	c := randomVector(t, newRand(), sp.Len())

	_, err = operator.ApplyOneBody(ctx, sp, h, c, operator.WithWorkers(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { operator.WithWorkers(0) })
	assert.Panics(t, func() { operator.WithLogger(nil) })
	assert.Panics(t, func() { operator.WithHermitianCheck(-1) })
	assert.NotPanics(t, func() { operator.WithHermitianCheck(0) })
}
