// SPDX-License-Identifier: MIT
// Package: slater/operator
//
// options.go — functional options for the evaluators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     evaluators themselves never panic on user data.
//   • The library is silent by default: logging goes to a discard handler
//     unless WithLogger is supplied.

package operator

import "log/slog"

// Option customizes an evaluator call.
type Option func(*config)

// config is the resolved option set for one evaluator call.
type config struct {
	workers        int          // number of basis partitions evaluated concurrently
	logger         *slog.Logger // debug records: sizes, partitions
	checkHermitian bool         // validate h before evaluation
	hermitianEps   float64      // tolerance for the check
}

// newConfig applies opts over the defaults (1 worker, discard logger, no check).
func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers partitions the basis into k contiguous ranges evaluated
// concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("operator: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("operator: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithHermitianCheck rejects one-body matrices that are not Hermitian within
// eps (matrix.ErrNotHermitian). Panics if eps < 0.
func WithHermitianCheck(eps float64) Option {
	if eps < 0 {
		panic("operator: WithHermitianCheck(eps<0)")
	}
	return func(c *config) {
		c.checkHermitian = true
		c.hermitianEps = eps
	}
}
