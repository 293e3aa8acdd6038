// File: methods_clone.go
// Role: derived-graph operators. Every operator here returns a fresh
// Graph that shares no mutable state with its receiver, per the
// "ownership" contract: each recursive enumeration frame owns its own
// graph, produced by a pure operator over its parent's graph.
package bigraph

// Clone returns a deep copy of g: vertex sets, adjacency, and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	defer g.muVert.RUnlock()

	out := &Graph{
		sideOf: make(map[string]Side, len(g.sideOf)),
		adj:    make(map[string][]string, len(g.adj)),
		edgeOf: make(map[[2]string]*Edge, len(g.edgeOf)),
		left:   append([]string(nil), g.left...),
		right:  append([]string(nil), g.right...),
	}
	for id, s := range g.sideOf {
		out.sideOf[id] = s
	}
	for id, nbrs := range g.adj {
		out.adj[id] = append([]string(nil), nbrs...)
	}
	for key, e := range g.edgeOf {
		copyE := *e
		out.edgeOf[key] = &copyE
	}

	return out
}

// WithoutEdge returns a copy of g with edge {l, r} removed. |V| is
// unchanged; |E| decreases by one. A no-op edge removal (edge absent)
// still returns a valid independent copy.
// Complexity: O(V + E).
func (g *Graph) WithoutEdge(l, r string) *Graph {
	out := g.Clone()
	out.removeEdge(l, r)
	return out
}

func (g *Graph) removeEdge(l, r string) {
	key := [2]string{l, r}
	if _, ok := g.edgeOf[key]; !ok {
		key = [2]string{r, l}
		if _, ok := g.edgeOf[key]; !ok {
			return
		}
		l, r = r, l
	}
	delete(g.edgeOf, key)
	g.adj[l] = removeFirst(g.adj[l], r)
	g.adj[r] = removeFirst(g.adj[r], l)
}

// WithoutEdgeEndpoints returns a copy of g with both endpoints of {l, r}
// removed, along with every edge incident to either endpoint. |V|
// decreases by two.
// Complexity: O(V + E).
func (g *Graph) WithoutEdgeEndpoints(l, r string) *Graph {
	out := g.Clone()
	out.removeVertex(l)
	out.removeVertex(r)
	return out
}

// WithoutVertices returns a copy of g with every vertex in vs removed,
// along with every edge incident to any of them. Vertices not present
// in g are silently ignored.
// Complexity: O(V + E).
func (g *Graph) WithoutVertices(vs []string) *Graph {
	out := g.Clone()
	for _, v := range vs {
		out.removeVertex(v)
	}
	return out
}

// removeVertex deletes v and every edge incident to it. Internal: the
// receiver must already be an owned (cloned) graph.
func (g *Graph) removeVertex(v string) {
	side, ok := g.sideOf[v]
	if !ok {
		return
	}
	for _, nbr := range g.adj[v] {
		g.adj[nbr] = removeFirst(g.adj[nbr], v)
		delete(g.edgeOf, [2]string{v, nbr})
		delete(g.edgeOf, [2]string{nbr, v})
	}
	delete(g.adj, v)
	delete(g.sideOf, v)
	if side == Left {
		g.left = removeFirst(g.left, v)
	} else {
		g.right = removeFirst(g.right, v)
	}
}

// removeFirst returns ss with the first occurrence of v removed,
// preserving the order of the remaining elements.
func removeFirst(ss []string, v string) []string {
	for i, s := range ss {
		if s == v {
			out := make([]string, 0, len(ss)-1)
			out = append(out, ss[:i]...)
			out = append(out, ss[i+1:]...)
			return out
		}
	}
	return ss
}
