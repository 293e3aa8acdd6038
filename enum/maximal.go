package enum

import (
	"sort"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
)

// Maximal enumerates every maximal matching of g: every matching that
// cannot be extended by adding another edge without first removing
// one. Every maximum matching is maximal, but Maximal additionally
// yields every matching stuck at a smaller size. It yields exactly one
// (empty) matching when g has no edges at all.
//
// Grounded on Uno (1997)'s enum_maximal_matchings: a graph with every
// vertex of degree ≤ 1 is already its own unique maximal matching
// (every edge, taken together). Otherwise a vertex v of degree ≥ 2 is
// chosen (the smallest ID, for determinism) and the recursion splits
// two ways: either v is matched via one of its own edges (recurse on
// v's endpoints removed, for every choice of edge), or v is left
// unmatched because a maximum matching of the subgraph induced by v's
// neighbors' other edges already saturates every one of v's neighbors
// (recurse on that matching's vertices removed, for every such maximum
// matching).
func Maximal(g *bigraph.Graph) *Sequence {
	return &Sequence{s: &maximalStepper{
		stack: []maximalJob{{g: g, prefix: hopkarp.Matching{}}},
	}}
}

type maximalJob struct {
	g      *bigraph.Graph
	prefix hopkarp.Matching
}

type maximalStepper struct {
	stack []maximalJob
	err   error
}

func (ms *maximalStepper) lastErr() error { return ms.err }

func (ms *maximalStepper) next() (hopkarp.Matching, bool) {
	if ms.err != nil {
		return nil, false
	}

	for len(ms.stack) > 0 {
		job := ms.stack[len(ms.stack)-1]
		ms.stack = ms.stack[:len(ms.stack)-1]

		m, ok := ms.process(job)
		if ms.err != nil {
			return nil, false
		}
		if ok {
			return m, true
		}
	}
	return nil, false
}

func (ms *maximalStepper) process(job maximalJob) (hopkarp.Matching, bool) {
	pivot, ok := pickPivot(job.g)
	if !ok {
		m := cloneMatching(job.prefix)
		for _, e := range job.g.Edges() {
			m[e.L] = e.R
		}
		return m, true
	}

	side, _ := job.g.Side(pivot)
	neighbors := job.g.Neighbors(pivot)

	var children []maximalJob
	for _, w := range neighbors {
		l, r := pivot, w
		if side != bigraph.Left {
			l, r = w, pivot
		}
		children = append(children, maximalJob{
			g:      job.g.WithoutEdgeEndpoints(pivot, w),
			prefix: mergeMatching(job.prefix, hopkarp.Matching{l: r}),
		})
	}

	induced := inducedNeighborGraph(job.g, pivot, neighbors)
	saturating, err := Maximum(induced).drainAll()
	if err != nil {
		ms.err = err
		return nil, false
	}
	if len(saturating) > 0 && len(saturating[0]) == len(neighbors) {
		for _, mPrime := range saturating {
			covered := make([]string, 0, 2*len(mPrime))
			for l, r := range mPrime {
				covered = append(covered, l, r)
			}
			children = append(children, maximalJob{
				g:      job.g.WithoutVertices(covered),
				prefix: mergeMatching(job.prefix, mPrime),
			})
		}
	}

	for i := len(children) - 1; i >= 0; i-- {
		ms.stack = append(ms.stack, children[i])
	}
	return nil, false
}

// pickPivot returns the lexicographically smallest vertex ID (either
// side) with degree ≥ 2, so the same graph always picks the same
// pivot. Returns ok = false when every vertex has degree ≤ 1.
func pickPivot(g *bigraph.Graph) (string, bool) {
	all := append(append([]string(nil), g.Top()...), g.Bottom()...)
	sort.Strings(all)
	for _, v := range all {
		if g.Degree(v) >= 2 {
			return v, true
		}
	}
	return "", false
}

// inducedNeighborGraph builds the subgraph made of every edge incident
// to a vertex in neighbors, except edges touching pivot itself: the
// graph whose maximum matchings witness whether pivot's neighbors can
// all be saturated without pivot.
func inducedNeighborGraph(g *bigraph.Graph, pivot string, neighbors []string) *bigraph.Graph {
	out := bigraph.NewGraph()
	for _, w := range neighbors {
		addSide(out, g, w)
		for _, w2 := range g.Neighbors(w) {
			if w2 == pivot {
				continue
			}
			addSide(out, g, w2)

			wSide, _ := g.Side(w)
			if wSide == bigraph.Left {
				_ = out.AddEdge(w, w2, nil)
			} else {
				_ = out.AddEdge(w2, w, nil)
			}
		}
	}
	return out
}

func addSide(out, g *bigraph.Graph, v string) {
	side, _ := g.Side(v)
	if side == bigraph.Left {
		_ = out.AddLeft(v)
	} else {
		_ = out.AddRight(v)
	}
}
