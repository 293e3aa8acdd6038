package matchgraph

import (
	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
)

// Directed builds D(g, m). For every edge {l, r} of g it adds exactly
// one directed edge: l→r if m matches l to r, r→l otherwise. The two
// orientations never collide, so |E(D)| = |E(g)|.
// Complexity: O(V + E).
func Directed(g *bigraph.Graph, m hopkarp.Matching) *Digraph {
	left := g.Top()
	right := g.Bottom()

	order := make([]string, 0, len(left)+len(right))
	isLeft := make(map[string]bool, len(left)+len(right))
	order = append(order, left...)
	for _, l := range left {
		isLeft[l] = true
	}
	order = append(order, right...)

	d := newDigraph(order, isLeft)
	for _, l := range left {
		for _, r := range g.Neighbors(l) {
			if m[l] == r {
				d.addEdge(l, r)
			} else {
				d.addEdge(r, l)
			}
		}
	}
	return d
}
