package enum

import (
	"context"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
	"github.com/katalvlaran/bimatch/matchgraph"
)

// Maximum enumerates every maximum-cardinality matching of g. The
// sequence is empty when g has no edges at all — a zero-size matching
// is not considered a result worth yielding, unlike Perfect's empty
// matching on an empty graph.
//
// Grounded on Uno (1997)'s enum_maximum_matchings: D(G, M) is trimmed
// to its strongly connected components only once, at the top level —
// recursive calls rebuild D(G, M) from the unreduced graph but never
// re-trim it. Each recursive step splits on whether D still holds an
// alternating cycle (case A: flip the cycle) or not (case B: swap one
// matched pair along a length-two alternating path instead). Both cases
// run the G⊖e branch before the G\e branch; case B pairs G⊖e with M' and
// G\e with M, the other way round from case A and Perfect.
func Maximum(g *bigraph.Graph) *Sequence {
	ms := &maximumStepper{}

	m, err := hopkarp.Match(context.Background(), g)
	if err != nil || len(m) == 0 {
		return &Sequence{s: ms}
	}

	ms.first = m
	ms.hasFirst = true
	d := matchgraph.TrimToSCCs(matchgraph.Directed(g, m))
	ms.stack = []maximumJob{{g: g, m: m, d: d}}
	return &Sequence{s: ms}
}

type maximumJob struct {
	g *bigraph.Graph
	m hopkarp.Matching
	d *matchgraph.Digraph
}

type maximumStepper struct {
	first    hopkarp.Matching
	hasFirst bool
	stack    []maximumJob
	err      error
}

func (ms *maximumStepper) lastErr() error { return ms.err }

func (ms *maximumStepper) next() (hopkarp.Matching, bool) {
	if ms.hasFirst {
		ms.hasFirst = false
		return ms.first, true
	}
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

func (ms *maximumStepper) process(job maximumJob) (hopkarp.Matching, bool) {
	if job.g.EdgeCount() == 0 {
		return nil, false
	}

	if cyc, ok := matchgraph.FindAlternatingCycle(job.d); ok {
		return ms.caseA(job, cyc)
	}
	return ms.caseB(job)
}

// caseA flips the alternating cycle D still holds, yields the result,
// and pushes (G\e, M') then (G⊖e, M) — (G⊖e, M) on top, so it runs
// first.
func (ms *maximumStepper) caseA(job maximumJob, cyc []string) (hopkarp.Matching, bool) {
	if err := checkCycle(job.d, cyc); err != nil {
		ms.err = err
		return nil, false
	}

	edgeL, edgeR, mPrime := flipCycle(cyc, job.m)
	if len(mPrime) != len(job.m) {
		ms.err = violation("cycle flip changed matching size")
		return nil, false
	}

	gPlus := job.g.WithoutEdgeEndpoints(edgeL, edgeR)
	gMinus := job.g.WithoutEdge(edgeL, edgeR)

	ms.stack = append(ms.stack,
		maximumJob{g: gMinus, m: mPrime, d: matchgraph.Directed(gMinus, mPrime)},
		maximumJob{g: gPlus, m: job.m, d: matchgraph.Directed(gPlus, job.m)},
	)
	return mPrime, true
}

// caseB runs when D holds no alternating cycle: it drops left1's pair
// from M and adds the new pair e = (left2, right), giving a same-size
// matching M', yields it, and pushes (G\e, M) then (G⊖e, M') — (G⊖e, M')
// on top, so it runs first.
func (ms *maximumStepper) caseB(job maximumJob) (hopkarp.Matching, bool) {
	left1, right, left2, ok := findFeasiblePath(job)
	if !ok {
		return nil, false
	}

	mPrime := cloneMatching(job.m)
	delete(mPrime, left1)
	mPrime[left2] = right
	if len(mPrime) != len(job.m) {
		ms.err = violation("path swap changed matching size")
		return nil, false
	}

	gPlus := job.g.WithoutEdgeEndpoints(left2, right)
	gMinus := job.g.WithoutEdge(left2, right)

	ms.stack = append(ms.stack,
		maximumJob{g: gMinus, m: job.m, d: matchgraph.Directed(gMinus, job.m)},
		maximumJob{g: gPlus, m: mPrime, d: matchgraph.Directed(gPlus, mPrime)},
	)
	return mPrime, true
}

// findFeasiblePath looks for a length-two alternating path in g that
// starts at a matched pair (l1, r) and ends at an unmatched vertex: the
// witness used to build a new same-size matching when D(G, M) has no
// alternating cycle left. Two shapes qualify: l1—r—l2 with l2 an
// unmatched LEFT neighbor of r (returned as left1 = l1, right = r,
// left2 = l2), and r—l1—r2 with r2 an unmatched RIGHT neighbor of l1
// (returned as left1 = l1, right = r2, left2 = l1). Iterates LEFT
// vertices of g in deterministic order, then neighbors in g's insertion
// order, so the same (G, M) always picks the same path.
func findFeasiblePath(job maximumJob) (left1, right, left2 string, ok bool) {
	matchedR := make(map[string]bool, len(job.m))
	for _, r := range job.m {
		matchedR[r] = true
	}
	for _, l1 := range job.g.Top() {
		r, matched := job.m[l1]
		if !matched {
			continue
		}
		for _, l2 := range job.g.Neighbors(r) {
			if _, taken := job.m[l2]; taken {
				continue
			}
			return l1, r, l2, true
		}
		for _, r2 := range job.g.Neighbors(l1) {
			if !matchedR[r2] {
				return l1, r2, l1, true
			}
		}
	}
	return "", "", "", false
}
