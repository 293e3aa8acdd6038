package bibuilder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// ErrTooFewVertices indicates a partition-size parameter is smaller
// than the constructor's minimum.
var ErrTooFewVertices = errors.New("bibuilder: parameter too small")

const minPartitionSize = 1

// Complete builds K_{n1,n2}: every LEFT vertex connected to every
// RIGHT vertex. n1 and n2 need not be equal.
// Complexity: O(n1·n2).
func Complete(n1, n2 int, opts ...Option) (*bigraph.Graph, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, fmt.Errorf("Complete: n1=%d, n2=%d (each must be >= %d): %w", n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	cfg := newConfig(opts...)
	g := bigraph.NewGraph(bigraph.WithCapacityHint(n1 + n2))

	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			if err := g.AddEdge(cfg.leftIDFn(i), cfg.rightIDFn(j), nil); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}

// CompleteBipartite builds K_{n,n}, the balanced complete bipartite
// graph most of the literature's enumeration examples use.
func CompleteBipartite(n int, opts ...Option) (*bigraph.Graph, error) {
	return Complete(n, n, opts...)
}
