package operator_test

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/slater/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func newRand() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }

func randComplex(rng *rand.Rand) complex128 {
	return complex(rng.Float64()*2-1, rng.Float64()*2-1)
}

// randomHermitian returns an l×l Hermitian matrix with real diagonal.
func randomHermitian(t testing.TB, rng *rand.Rand, l int) *matrix.Dense {
	t.Helper()
	h, err := matrix.NewDense(l, l)
	require.NoError(t, err)
	for i := 0; i < l; i++ {
		require.NoError(t, h.Set(i, i, complex(rng.Float64()*2-1, 0)))
		for j := i + 1; j < l; j++ {
			x := randComplex(rng)
			require.NoError(t, h.Set(i, j, x))
			require.NoError(t, h.Set(j, i, cmplx.Conj(x)))
		}
	}

	return h
}

func randomVector(t testing.TB, rng *rand.Rand, n int) *matrix.Vector {
	t.Helper()
	vals := make([]complex128, n)
	for i := range vals {
		vals[i] = randComplex(rng)
	}
	v, err := matrix.NewVectorFrom(vals)
	require.NoError(t, err)

	return v
}

func at(t testing.TB, m *matrix.Dense, i, j int) complex128 {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}

// requireClose compares two vectors component-wise within tol.
func requireClose(t testing.TB, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, real(want[i]), real(got[i]), tol, "re[%d]", i)
		require.InDeltaf(t, imag(want[i]), imag(got[i]), tol, "im[%d]", i)
	}
}

// dot returns ⟨x|y⟩ = Σ conj(x_i)·y_i.
func dot(x, y []complex128) complex128 {
	var s complex128
	for i := range x {
		s += cmplx.Conj(x[i]) * y[i]
	}

	return s
}
