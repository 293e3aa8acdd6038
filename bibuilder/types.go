// Package bibuilder provides deterministic bigraph.Graph constructors:
// complete bipartite graphs, paths, and the cubelet-matching fixture
// used to exercise enum against a graph with real combinatorial
// structure instead of a synthetic shape.
package bibuilder

import "fmt"

// IDFn maps a side-local index to a vertex ID string.
type IDFn func(i int) string

// DefaultLeftIDFn renders "l0", "l1", ...
func DefaultLeftIDFn(i int) string { return fmt.Sprintf("l%d", i) }

// DefaultRightIDFn renders "r0", "r1", ...
func DefaultRightIDFn(i int) string { return fmt.Sprintf("r%d", i) }

// Option configures a constructor's ID scheme.
type Option func(cfg *config)

type config struct {
	leftIDFn  IDFn
	rightIDFn IDFn
}

func newConfig(opts ...Option) *config {
	cfg := &config{leftIDFn: DefaultLeftIDFn, rightIDFn: DefaultRightIDFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLeftIDScheme injects a custom IDFn for LEFT vertices. A nil idFn
// is a no-op.
func WithLeftIDScheme(idFn IDFn) Option {
	return func(cfg *config) {
		if idFn != nil {
			cfg.leftIDFn = idFn
		}
	}
}

// WithRightIDScheme injects a custom IDFn for RIGHT vertices. A nil
// idFn is a no-op.
func WithRightIDScheme(idFn IDFn) Option {
	return func(cfg *config) {
		if idFn != nil {
			cfg.rightIDFn = idFn
		}
	}
}
