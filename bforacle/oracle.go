// Package bforacle provides brute-force matching enumerators used only
// to cross-check enum's output in tests: BruteForcePerfect and
// BruteForceMaximum materialize every matching of a given kind by
// exhaustive search, trading exponential time for an implementation
// simple enough to trust unconditionally.
package bforacle

import (
	"context"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/hopkarp"
)

// BruteForcePerfect returns every perfect matching of g, found by
// taking the Cartesian product of each LEFT vertex's neighbor list and
// keeping only the assignments that pick a distinct RIGHT vertex for
// every LEFT vertex. Empty (nil) if the sides are unequal in size or no
// perfect matching exists.
// Complexity: O(prod(deg(l))) — exponential; tests only.
func BruteForcePerfect(g *bigraph.Graph) []hopkarp.Matching {
	left := g.Top()
	if len(left) != len(g.Bottom()) || len(left) == 0 {
		return nil
	}

	neighbors := make([][]string, len(left))
	for i, l := range left {
		neighbors[i] = g.Neighbors(l)
		if len(neighbors[i]) == 0 {
			return nil
		}
	}

	var out []hopkarp.Matching
	assignment := make([]string, len(left))
	var product func(i int)
	product = func(i int) {
		if i == len(left) {
			if !allDistinct(assignment) {
				return
			}
			m := make(hopkarp.Matching, len(left))
			for k, l := range left {
				m[l] = assignment[k]
			}
			out = append(out, m)
			return
		}
		for _, r := range neighbors[i] {
			assignment[i] = r
			product(i + 1)
		}
	}
	product(0)

	return out
}

// BruteForceMaximum returns every maximum-cardinality matching of g,
// found by taking every size-k combination of g's edges (k = the
// maximum matching size, from hopkarp.Match) and keeping the
// combinations whose edges share no endpoint.
// Complexity: O(C(|E|,k)) — exponential; tests only.
func BruteForceMaximum(g *bigraph.Graph) []hopkarp.Matching {
	m, err := hopkarp.Match(context.Background(), g)
	if err != nil || len(m) == 0 {
		return nil
	}
	k := len(m)

	edges := g.Edges()
	var out []hopkarp.Matching
	combinations(edges, k, func(subset []bigraph.Edge) {
		seenL := make(map[string]bool, k)
		seenR := make(map[string]bool, k)
		for _, e := range subset {
			if seenL[e.L] || seenR[e.R] {
				return
			}
			seenL[e.L] = true
			seenR[e.R] = true
		}
		mm := make(hopkarp.Matching, k)
		for _, e := range subset {
			mm[e.L] = e.R
		}
		out = append(out, mm)
	})

	return out
}

func allDistinct(vs []string) bool {
	seen := make(map[string]bool, len(vs))
	for _, v := range vs {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
