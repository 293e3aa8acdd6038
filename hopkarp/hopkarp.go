// Package hopkarp computes one maximum-cardinality matching of a
// bigraph.Graph using the Hopcroft–Karp algorithm: alternating BFS
// layering from every unmatched LEFT vertex, followed by a DFS phase
// that augments along vertex-disjoint shortest augmenting paths. Phases
// repeat until a BFS layering finds no further augmenting path.
//
// Complexity: O(E·√V). On an empty graph, Match returns the empty
// matching. For identical inputs with identical neighbor iteration
// order, Match is deterministic: tie-breaks always follow neighbor
// iteration order.
package hopkarp

import (
	"context"

	"github.com/katalvlaran/bimatch/bigraph"
)

// Matching maps each matched LEFT vertex ID to its RIGHT partner.
type Matching map[string]string

const infDist = -1

// Match computes a maximum-cardinality matching of g. Returns
// context.Canceled / context.DeadlineExceeded if ctx is done before
// completion; a nil ctx is treated as context.Background.
func Match(ctx context.Context, g *bigraph.Graph) (Matching, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	left := g.Top()
	matchRight := make(map[string]string, len(left)) // RIGHT → LEFT
	matchLeft := make(map[string]string, len(left))  // LEFT → RIGHT

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dist, found := bfsLayer(g, left, matchLeft, matchRight)
		if !found {
			break
		}

		for _, l := range left {
			if _, matched := matchLeft[l]; matched {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			visited := make(map[string]bool)
			dfsAugment(g, l, dist, matchLeft, matchRight, visited)
		}
	}

	out := make(Matching, len(matchLeft))
	for l, r := range matchLeft {
		out[l] = r
	}
	return out, nil
}

// bfsLayer runs the alternating BFS phase from every unmatched LEFT
// vertex, recording each LEFT vertex's layer distance. A RIGHT vertex
// with no matched LEFT predecessor marks the BFS frontier as having
// reached an augmenting-path endpoint (found = true). Layers deeper than
// the first one that reaches such a vertex are reset to infDist, so
// dfsAugment only follows shortest augmenting paths.
func bfsLayer(g *bigraph.Graph, left []string, matchLeft, matchRight map[string]string) (map[string]int, bool) {
	dist := make(map[string]int, len(left))
	queue := make([]string, 0, len(left))

	for _, l := range left {
		if _, matched := matchLeft[l]; !matched {
			dist[l] = 0
			queue = append(queue, l)
		} else {
			dist[l] = infDist
		}
	}

	found := false
	limit := 0
	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]

		for _, r := range g.Neighbors(l) {
			matchedLeft, isMatched := matchRight[r]
			if !isMatched {
				if !found {
					found, limit = true, dist[l]
				}
				continue
			}
			if d, seen := dist[matchedLeft]; !seen || d == infDist {
				dist[matchedLeft] = dist[l] + 1
				queue = append(queue, matchedLeft)
			}
		}
	}

	if found {
		for v, d := range dist {
			if d > limit {
				dist[v] = infDist
			}
		}
	}
	return dist, found
}

// dfsAugment attempts to extend a vertex-disjoint shortest augmenting
// path from l, following only layered edges (dist[next] == dist[l]+1).
// On success it flips the path's matched pairs and returns true.
func dfsAugment(g *bigraph.Graph, l string, dist map[string]int, matchLeft, matchRight map[string]string, visited map[string]bool) bool {
	visited[l] = true

	for _, r := range g.Neighbors(l) {
		matchedLeft, isMatched := matchRight[r]
		if !isMatched {
			matchLeft[l] = r
			matchRight[r] = l
			return true
		}
		if visited[matchedLeft] {
			continue
		}
		if d, ok := dist[matchedLeft]; !ok || d != dist[l]+1 {
			continue
		}
		if dfsAugment(g, matchedLeft, dist, matchLeft, matchRight, visited) {
			matchLeft[l] = r
			matchRight[r] = l
			return true
		}
	}

	dist[l] = infDist
	return false
}
