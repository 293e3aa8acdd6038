// Package matchgraph builds and trims the directed matching graph
// D(G, M): one directed edge per edge of a bigraph.Graph G, oriented
// l→r when {l, r} belongs to the matching M, r→l otherwise. Every
// directed cycle in D alternates between LEFT and RIGHT vertices and
// between matched and unmatched edges of G — the structure the
// enumeration engine in package enum pivots its recursion on.
package matchgraph

// Digraph is a directed graph over the vertex set of some bigraph.Graph,
// with successor lists in deterministic (construction) order so that
// FindAlternatingCycle and TrimToSCCs always return the same result for
// the same (G, M).
type Digraph struct {
	order  []string            // every vertex of G, LEFT then RIGHT, insertion order
	isLeft map[string]bool     // vertex → true if it belongs to G's LEFT side
	adjOut map[string][]string // vertex → directed successors, insertion order
}

func newDigraph(order []string, isLeft map[string]bool) *Digraph {
	return &Digraph{
		order:  order,
		isLeft: isLeft,
		adjOut: make(map[string][]string, len(order)),
	}
}

func (d *Digraph) addEdge(from, to string) {
	d.adjOut[from] = append(d.adjOut[from], to)
}

// Vertices returns every vertex of the graph this Digraph was built from,
// in deterministic order.
func (d *Digraph) Vertices() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Successors returns v's outgoing neighbors in insertion order.
func (d *Digraph) Successors(v string) []string {
	nbrs := d.adjOut[v]
	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out
}

// IsLeft reports whether v belongs to the LEFT side of the graph this
// Digraph was built from.
func (d *Digraph) IsLeft(v string) bool { return d.isLeft[v] }

// EdgeCount returns the number of directed edges.
func (d *Digraph) EdgeCount() int {
	n := 0
	for _, nbrs := range d.adjOut {
		n += len(nbrs)
	}
	return n
}
