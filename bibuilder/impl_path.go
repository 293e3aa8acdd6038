package bibuilder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

const minPathSize = 1

// PathBipartite builds a 2n-vertex path alternating LEFT and RIGHT:
// l0-r0-l1-r1-...-l(n-1)-r(n-1), plus the closing edge r(n-1)-l0,
// giving, for n >= 2, the smallest graph with exactly one alternating
// cycle — a minimal scenario for exercising enum's cycle-split
// recursion. n must be >= 1; for n = 1 the closing edge is l0-r0
// itself, so the graph is a single edge with no cycle.
// Complexity: O(n).
func PathBipartite(n int, opts ...Option) (*bigraph.Graph, error) {
	if n < minPathSize {
		return nil, fmt.Errorf("PathBipartite: n=%d < min=%d: %w", n, minPathSize, ErrTooFewVertices)
	}

	cfg := newConfig(opts...)
	g := bigraph.NewGraph(bigraph.WithCapacityHint(2 * n))

	for i := 0; i < n; i++ {
		l, r := cfg.leftIDFn(i), cfg.rightIDFn(i)
		if err := g.AddEdge(l, r, nil); err != nil {
			return nil, fmt.Errorf("PathBipartite: AddEdge(%s,%s): %w", l, r, err)
		}
		if i > 0 {
			prevR := cfg.rightIDFn(i - 1)
			if err := g.AddEdge(l, prevR, nil); err != nil {
				return nil, fmt.Errorf("PathBipartite: AddEdge(%s,%s): %w", l, prevR, err)
			}
		}
	}

	l0, lastR := cfg.leftIDFn(0), cfg.rightIDFn(n-1)
	if err := g.AddEdge(l0, lastR, nil); err != nil {
		return nil, fmt.Errorf("PathBipartite: AddEdge(%s,%s): %w", l0, lastR, err)
	}
	return g, nil
}
