// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"

	"github.com/katalvlaran/slater/dense"
	"github.com/katalvlaran/slater/indexset"
	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
	"github.com/katalvlaran/slater/operator"
	"github.com/katalvlaran/slater/shape"
	"github.com/spf13/cobra"
)

// printCutoff hides output amplitudes below this magnitude.
const printCutoff = 1e-12

// app carries the persistent flags shared by every subcommand.
type app struct {
	verbose bool
	workers int
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "slater",
		Short:         "Enumerate many-body bases and apply operators to coefficient vectors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.workers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", a.workers)
			}
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug records to stderr")
	root.PersistentFlags().IntVar(&a.workers, "workers", 1, "Number of basis partitions evaluated concurrently")

	root.AddCommand(a.basisCmd(), a.applyCmd())

	return root
}

func (a *app) basisCmd() *cobra.Command {
	var (
		n, l      int
		dims      []int
		neighbors bool
	)
	cmd := &cobra.Command{
		Use:   "basis",
		Short: "List the states of a determinant (-n, -l) or product (--shape) basis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				b   indexset.Basis
				err error
			)
			if len(dims) > 0 {
				b, err = productBasis(dims)
			} else {
				b, err = occupation.NewSpace(n, l)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("listing basis", "states", b.Len(), "orbitals", b.Orbitals())

			return printBasis(cmd.OutOrStdout(), b, neighbors)
		},
	}
	cmd.Flags().IntVarP(&n, "particles", "n", 1, "Number of particles")
	cmd.Flags().IntVarP(&l, "orbitals", "l", 2, "Number of orbitals")
	cmd.Flags().IntSliceVar(&dims, "shape", nil, "Dimensions of a product basis, e.g. 2,3,4")
	cmd.Flags().BoolVar(&neighbors, "neighbors", false, "Also print one- and two-body neighbor counts")

	return cmd
}

func productBasis(dims []int) (*dense.Basis, error) {
	s, err := shape.New(dims...)
	if err != nil {
		return nil, err
	}

	return dense.NewBasis(s)
}

func printBasis(w io.Writer, b indexset.Basis, neighbors bool) error {
	return indexset.Walk(b, 0, b.Len(), func(k int, s indexset.IndexSet) error {
		var err error
		if neighbors {
			_, err = fmt.Fprintf(w, "%d\t%v\t%d\t%d\n", k, s.Orbitals(),
				indexset.Count(s.OneBodyNeighbors()), indexset.Count(s.TwoBodyNeighbors()))
		} else {
			_, err = fmt.Fprintf(w, "%d\t%v\n", k, s.Orbitals())
		}
		return err
	})
}

func (a *app) applyCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the operator of a problem file and print the non-zero output amplitudes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := LoadProblem(path)
			if err != nil {
				return err
			}
			a.logger.Info("problem loaded",
				"path", path,
				"particles", p.Particles,
				"orbitals", p.Orbitals,
				"one_body", len(p.OneBody),
				"two_body", len(p.TwoBody),
			)
			out, sp, err := a.run(cmd.Context(), p)
			if err != nil {
				return err
			}

			return printVector(cmd.OutOrStdout(), sp, out)
		},
	}
	cmd.Flags().StringVarP(&path, "problem", "p", "", "YAML problem file")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

// run applies the one-body and two-body parts of p and sums them.
func (a *app) run(ctx context.Context, p *Problem) ([]complex128, *occupation.Space, error) {
	sp, err := p.Space()
	if err != nil {
		return nil, nil, err
	}
	c, err := p.Vector(sp.Len())
	if err != nil {
		return nil, nil, err
	}
	h, err := p.OneBodyMatrix()
	if err != nil {
		return nil, nil, err
	}
	u, err := p.TwoBodyTensor()
	if err != nil {
		return nil, nil, err
	}

	opts := []operator.Option{operator.WithWorkers(a.workers), operator.WithLogger(a.logger)}
	sum := make([]complex128, sp.Len())
	add := func(v *matrix.Vector) {
		for i, x := range v.Data() {
			sum[i] += x
		}
	}
	if h != nil {
		v, err := operator.ApplyOneBody(ctx, sp, h, c, opts...)
		if err != nil {
			return nil, nil, err
		}
		add(v)
	}
	if u != nil {
		v, err := operator.ApplyTwoBody(ctx, sp, u, c, opts...)
		if err != nil {
			return nil, nil, err
		}
		add(v)
	}

	return sum, sp, nil
}

func printVector(w io.Writer, sp *occupation.Space, v []complex128) error {
	for k, x := range v {
		if cmplx.Abs(x) < printCutoff {
			continue
		}
		st, err := sp.Unrank(k)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%d\t%v\t%g\t%g\n", k, st.Orbitals(), real(x), imag(x)); err != nil {
			return err
		}
	}

	return nil
}
