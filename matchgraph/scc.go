package matchgraph

// TrimToSCCs returns a copy of d with every inter-component edge
// removed: a directed edge u→v survives only if u and v lie in the same
// strongly connected component of d. No edge discarded this way can
// ever lie on a cycle, so trimming never removes an edge some
// perfect/maximum matching could still use, and it bounds the recursion
// the enum package builds on top of D to polynomial delay.
// Complexity: O(V + E).
func TrimToSCCs(d *Digraph) *Digraph {
	comp := tarjanSCC(d)

	out := newDigraph(append([]string(nil), d.order...), d.isLeft)
	for _, v := range d.order {
		for _, w := range d.Successors(v) {
			if comp[v] == comp[w] {
				out.addEdge(v, w)
			}
		}
	}
	return out
}

// tarjanSCC computes Tarjan's strongly connected components over d,
// visiting vertices and successors in d's deterministic order. Returned
// component indices carry no meaning beyond equality.
func tarjanSCC(d *Digraph) map[string]int {
	var (
		nextIndex int
		compCount int
		stack     []string
		indexOf   = make(map[string]int, len(d.order))
		lowlink   = make(map[string]int, len(d.order))
		onStack   = make(map[string]bool, len(d.order))
		comp      = make(map[string]int, len(d.order))
	)

	var strongconnect func(v string)
	strongconnect = func(v string) {
		indexOf[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range d.Successors(v) {
			if _, seen := indexOf[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indexOf[w] < lowlink[v] {
					lowlink[v] = indexOf[w]
				}
			}
		}

		if lowlink[v] == indexOf[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = compCount
				if w == v {
					break
				}
			}
			compCount++
		}
	}

	for _, v := range d.order {
		if _, seen := indexOf[v]; !seen {
			strongconnect(v)
		}
	}

	return comp
}
