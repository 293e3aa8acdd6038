package enum

import (
	"fmt"

	"github.com/katalvlaran/bimatch"
	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
	"github.com/katalvlaran/bimatch/matchgraph"
)

// trimmedUndirected rebuilds D(g, m), trims it to its strongly
// connected components, and projects the survivors back to an
// undirected bigraph.Graph over the same vertex set as g. Used at
// every recursive level of Perfect; Maximum trims its directed D(G, M)
// itself, once, at its entry point, and does not call this.
func trimmedUndirected(g *bigraph.Graph, m hopkarp.Matching) *bigraph.Graph {
	return projectUndirected(matchgraph.TrimToSCCs(matchgraph.Directed(g, m)))
}

func projectUndirected(d *matchgraph.Digraph) *bigraph.Graph {
	out := bigraph.NewGraph()
	for _, v := range d.Vertices() {
		if d.IsLeft(v) {
			_ = out.AddLeft(v)
		} else {
			_ = out.AddRight(v)
		}
	}
	for _, u := range d.Vertices() {
		for _, w := range d.Successors(u) {
			if d.IsLeft(u) {
				_ = out.AddEdge(u, w, nil)
			} else {
				_ = out.AddEdge(w, u, nil)
			}
		}
	}
	return out
}

// flipCycle computes M' by reassigning every LEFT vertex on cyc to the
// RIGHT vertex immediately before it along the cycle: ℓ_i ↦
// r_(i-1 mod k). cyc must already be normalized (cyc[0] is LEFT).
// Returns the split edge (cyc[0], cyc[1]) alongside M'.
func flipCycle(cyc []string, m hopkarp.Matching) (edgeL, edgeR string, mPrime hopkarp.Matching) {
	k := len(cyc) / 2
	mPrime = cloneMatching(m)
	for i := 0; i < k; i++ {
		l := cyc[2*i]
		var r string
		if i == 0 {
			r = cyc[2*k-1]
		} else {
			r = cyc[2*i-1]
		}
		mPrime[l] = r
	}
	return cyc[0], cyc[1], mPrime
}

// checkCycle reports a violation if cyc does not alternate LEFT and
// RIGHT vertices starting at LEFT, or has odd or degenerate length —
// the shape FindAlternatingCycle is contracted to always return.
func checkCycle(d *matchgraph.Digraph, cyc []string) error {
	if len(cyc) < 4 || len(cyc)%2 != 0 {
		return violation(fmt.Sprintf("cycle has invalid length %d", len(cyc)))
	}
	for i, v := range cyc {
		wantLeft := i%2 == 0
		if d.IsLeft(v) != wantLeft {
			return violation(fmt.Sprintf("cycle vertex %d (%s) breaks LEFT/RIGHT alternation", i, v))
		}
	}
	return nil
}

// violation reports a broken internal invariant: it panics under
// bimatch.Debug, so the failure is caught close to its source during
// development, and wraps bimatch.ErrInvariantViolation otherwise, so a
// release build fails a call to Next rather than crashing.
func violation(msg string) error {
	if bimatch.Debug {
		panic("enum: " + msg)
	}
	return fmt.Errorf("enum: %s: %w", msg, bimatch.ErrInvariantViolation)
}
