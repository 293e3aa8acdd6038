package matchgraph

// FindAlternatingCycle searches d for one directed cycle, visiting
// vertices and their successors in d's deterministic order so that the
// same (G, M) always yields the same cycle. The cycle is returned as
// cycle[0]→cycle[1]→...→cycle[n-1]→cycle[0], rotated so cycle[0] is a
// LEFT vertex — always possible when a cycle exists, since a cycle in a
// directed matching graph alternates sides and therefore has even
// length.
//
// Grounded on the three-color back-edge search of dfs.DetectCycles,
// adapted to a directed graph with a single-pass visited/path check
// (two-color: "on current path" vs. "already fully explored").
func FindAlternatingCycle(d *Digraph) ([]string, bool) {
	visited := make(map[string]bool, len(d.order))
	for _, start := range d.order {
		if cyc := findCycleFrom(d, start, nil, visited); cyc != nil {
			return normalizeCycle(d, cyc), true
		}
	}
	return nil, false
}

func findCycleFrom(d *Digraph, node string, path []string, visited map[string]bool) []string {
	if visited[node] {
		for i, v := range path {
			if v == node {
				return append([]string(nil), path[i:]...)
			}
		}
		return nil
	}
	visited[node] = true

	next := append(append([]string(nil), path...), node)
	for _, succ := range d.Successors(node) {
		if cyc := findCycleFrom(d, succ, next, visited); cyc != nil {
			return cyc
		}
	}
	return nil
}

// normalizeCycle rotates cyc by at most one position so cyc[0] is LEFT.
func normalizeCycle(d *Digraph, cyc []string) []string {
	if d.IsLeft(cyc[0]) {
		return cyc
	}
	out := make([]string, len(cyc))
	out[0] = cyc[len(cyc)-1]
	copy(out[1:], cyc[:len(cyc)-1])
	return out
}
