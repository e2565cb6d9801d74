// SPDX-License-Identifier: MIT

package operator

import (
	"context"

	"github.com/katalvlaran/slater/indexset"
	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is the number of basis states visited between context checks.
const cancelCheckEvery = 256

// span is a half-open range [from, to) of basis indices.
type span struct{ from, to int }

// partitions splits [0,n) into at most k contiguous, nearly equal spans.
func partitions(n, k int) []span {
	if k > n {
		k = n
	}
	size := (n + k - 1) / k
	out := make([]span, 0, k)
	for from := 0; from < n; from += size {
		out = append(out, span{from: from, to: min(from+size, n)})
	}

	return out
}

// visitFunc folds the contribution of basis state s (index k) into acc.
type visitFunc func(k int, s indexset.IndexSet, acc []complex128) error

// accumulate walks b in successor order, split into cfg.workers spans that
// run concurrently, each into its own partial vector. Partials are summed in
// span order so the result does not depend on scheduling.
// MAIN DESCRIPTION:
//   - Fan out one goroutine per span through an errgroup limited to
//     cfg.workers; the first error cancels the rest.
//
// Complexity:
//   - Time O(Σ visit), Space O(workers · b.Len()).
func accumulate(ctx context.Context, b indexset.Basis, cfg config, op string, visit visitFunc) ([]complex128, error) {
	n := b.Len()
	spans := partitions(n, cfg.workers)
	partials := make([][]complex128, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, sp := range spans {
		g.Go(func() error {
			acc := make([]complex128, n)
			err := indexset.Walk(b, sp.from, sp.to, func(k int, s indexset.IndexSet) error {
				if (k-sp.from)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				return visit(k, s, acc)
			})
			if err != nil {
				return err
			}
			partials[i] = acc
			cfg.logger.DebugContext(gctx, "partition evaluated",
				"op", op,
				"from", sp.from,
				"to", sp.to,
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := partials[0]
	for _, p := range partials[1:] {
		for k, x := range p {
			out[k] += x
		}
	}

	return out, nil
}
