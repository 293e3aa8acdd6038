package bibuilder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bimatch/bigraph"
)

// cubeletFaces lists, for each of the 8 cubelets of a 2x2x2 Rubik's
// cube corner set, the three face letters it carries.
var cubeletFaces = [8]string{
	"URF",
	"DFR",
	"UFL",
	"DLF",
	"ULB",
	"DBL",
	"DRB",
	"UBR",
}

// cubeletExample is one concrete assignment of a face letter to each
// of 8 cubelet positions: position i wants a cubelet carrying the
// letter cubeletExample[i].
const cubeletExample = "FLUUFFLB"

// Cubelets builds the bipartite graph of the Rubik's-cube corner
// assignment problem: LEFT vertices are the 8 cubelet positions (one
// per letter of cubeletExample), RIGHT vertices are the 8 physical
// cubelets (cubeletFaces); an edge exists between position i and
// cubelet j iff cubeletFaces[j] carries the letter cubeletExample[i].
// A perfect matching of this graph is a valid assignment of cubelets to
// positions.
func Cubelets(opts ...Option) (*bigraph.Graph, error) {
	cfg := newConfig(opts...)
	g := bigraph.NewGraph(bigraph.WithCapacityHint(2 * len(cubeletExample)))

	for i, want := range cubeletExample {
		l := cfg.leftIDFn(i)
		for j, faces := range cubeletFaces {
			if !strings.ContainsRune(faces, want) {
				continue
			}
			r := cfg.rightIDFn(j)
			if err := g.AddEdge(l, r, nil); err != nil {
				return nil, fmt.Errorf("Cubelets: AddEdge(%s,%s): %w", l, r, err)
			}
		}
	}
	return g, nil
}
