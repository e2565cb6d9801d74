package operator_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
	"github.com/katalvlaran/slater/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTwoBody_PairCounting(t *testing.T) {
	// Σ_{p≠q} a†_p a†_q a_q a_p = N(N-1).
	const n, l = 3, 6
	u, err := matrix.NewTensor4(l)
	require.NoError(t, err)
	for p := 0; p < l; p++ {
		for q := 0; q < l; q++ {
			require.NoError(t, u.Set(p, q, p, q, 1))
		}
	}
	sp, err := occupation.NewSpace(n, l)
	require.NoError(t, err)
	c := randomVector(t, newRand(), sp.Len())

	got, err := operator.ApplyTwoBody(context.Background(), sp, u, c)
	require.NoError(t, err)

	want := c.Data()
	for i := range want {
		want[i] *= n * (n - 1)
	}
	requireClose(t, want, got.Data())
}

func TestApplyTwoBody_ReducesToOneBody(t *testing.T) {
	// u[p,q,r,s] = h[p,r]·δ_qs gives (N-1)·Σ h[p,r] a†_p a_r.
	const n, l = 3, 5
	rng := newRand()
	h := randomHermitian(t, rng, l)
	u, err := matrix.NewTensor4(l)
	require.NoError(t, err)
	for p := 0; p < l; p++ {
		for r := 0; r < l; r++ {
			for q := 0; q < l; q++ {
				require.NoError(t, u.Set(p, q, r, q, at(t, h, p, r)))
			}
		}
	}
	sp, err := occupation.NewSpace(n, l)
	require.NoError(t, err)
	c := randomVector(t, rng, sp.Len())

	one, err := operator.ApplyOneBody(context.Background(), sp, h, c)
	require.NoError(t, err)
	two, err := operator.ApplyTwoBody(context.Background(), sp, u, c, operator.WithWorkers(2))
	require.NoError(t, err)

	want := one.Data()
	for i := range want {
		want[i] *= n - 1
	}
	requireClose(t, want, two.Data())
}

func TestApplyTwoBody_Errors(t *testing.T) {
	ctx := context.Background()
	sp, err := occupation.NewSpace(2, 4)
	require.NoError(t, err)
	u4, err := matrix.NewTensor4(4)
	require.NoError(t, err)
	c, err := matrix.NewVector(6)
	require.NoError(t, err)

	_, err = operator.ApplyTwoBody(ctx, nil, u4, c)
	assert.ErrorIs(t, err, operator.ErrNilBasis)

	u3, err := matrix.NewTensor4(3)
	require.NoError(t, err)
	_, err = operator.ApplyTwoBody(ctx, sp, u3, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = operator.ApplyTwoBody(ctx, sp, nil, c)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	c5, err := matrix.NewVector(5)
	require.NoError(t, err)
	_, err = operator.ApplyTwoBody(ctx, sp, u4, c5)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWithLogger_RecordsPartitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sp, err := occupation.NewSpace(2, 5)
	require.NoError(t, err)
	h, err := matrix.Identity(5)
	require.NoError(t, err)
	c := randomVector(t, newRand(), sp.Len())

	_, err = operator.ApplyOneBody(context.Background(), sp, h, c,
		operator.WithWorkers(2), operator.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "applying one-body operator")
	assert.Contains(t, out, "states=10")
	assert.Contains(t, out, "partition evaluated")
	assert.Contains(t, out, "from=5")
}
