package enum

import (
	"context"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
	"github.com/katalvlaran/bimatch/matchgraph"
)

// Perfect enumerates every perfect matching of g: every LEFT vertex
// paired with a distinct RIGHT vertex and vice versa. The sequence is
// empty whenever |LEFT| ≠ |RIGHT| or no perfect matching exists; it
// yields exactly one (empty) matching when g has no vertices at all.
//
// Grounded on Uno (1997)'s enum_perfect_matchings: a seed matching is
// found by Hopcroft–Karp, then every further matching is reached by
// flipping one alternating cycle of D(G, M) at a time, re-trimming D to
// its strongly connected components at every recursive level — unlike
// Maximum, which trims only once.
func Perfect(g *bigraph.Graph) *Sequence {
	ps := &perfectStepper{}
	if !g.SidesEqualSize() {
		return &Sequence{s: ps}
	}

	m, err := hopkarp.Match(context.Background(), g)
	if err != nil || len(m) != len(g.Top()) {
		return &Sequence{s: ps}
	}

	ps.first = m
	ps.hasFirst = true
	ps.stack = []perfectJob{{g: trimmedUndirected(g, m), m: m}}
	return &Sequence{s: ps}
}

type perfectJob struct {
	g *bigraph.Graph
	m hopkarp.Matching
}

type perfectStepper struct {
	first    hopkarp.Matching
	hasFirst bool
	stack    []perfectJob
	err      error
}

func (ps *perfectStepper) lastErr() error { return ps.err }

func (ps *perfectStepper) next() (hopkarp.Matching, bool) {
	if ps.hasFirst {
		ps.hasFirst = false
		return ps.first, true
	}
	if ps.err != nil {
		return nil, false
	}

	for len(ps.stack) > 0 {
		job := ps.stack[len(ps.stack)-1]
		ps.stack = ps.stack[:len(ps.stack)-1]

		mPrime, ok := ps.process(job)
		if ps.err != nil {
			return nil, false
		}
		if ok {
			return mPrime, true
		}
	}
	return nil, false
}

// process implements one call of perfect_iter(G, M): find an
// alternating cycle, flip it into M', yield M', and push the two
// recursion branches (G⊖e, M) and (G\e, M') — each re-trimmed to its
// strongly connected components before the next call looks for a
// cycle in it. A job with no cycle left is a dead end: it yields
// nothing and pushes nothing.
func (ps *perfectStepper) process(job perfectJob) (hopkarp.Matching, bool) {
	if job.g.EdgeCount() == 0 {
		return nil, false
	}

	d := matchgraph.Directed(job.g, job.m)
	cyc, ok := matchgraph.FindAlternatingCycle(d)
	if !ok {
		return nil, false
	}
	if err := checkCycle(d, cyc); err != nil {
		ps.err = err
		return nil, false
	}

	edgeL, edgeR, mPrime := flipCycle(cyc, job.m)

	gPlus := trimmedUndirected(job.g.WithoutEdgeEndpoints(edgeL, edgeR), job.m)
	gMinus := trimmedUndirected(job.g.WithoutEdge(edgeL, edgeR), mPrime)

	// Push in reverse: (G⊖e, M) must be fully drained before (G\e, M')
	// runs, so it sits on top of the stack.
	ps.stack = append(ps.stack,
		perfectJob{g: gMinus, m: mPrime},
		perfectJob{g: gPlus, m: job.m},
	)

	return mPrime, true
}
