package bigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bigraph"
)

func triangleFreeSample() *bigraph.Graph {
	g := bigraph.NewGraph()
	_ = g.AddEdge("l1", "r1", nil)
	_ = g.AddEdge("l1", "r2", nil)
	_ = g.AddEdge("l2", "r1", nil)
	return g
}

func TestClone_Independence(t *testing.T) {
	g := triangleFreeSample()
	clone := g.Clone()

	require.NoError(t, clone.AddEdge("l3", "r3", nil))
	assert.False(t, g.HasVertex("l3"), "mutating clone affected original graph")
	assert.True(t, clone.HasEdge("l1", "r1"), "clone missing an edge present in original")
}

func TestWithoutEdge(t *testing.T) {
	g := triangleFreeSample()
	out := g.WithoutEdge("l1", "r1")

	assert.False(t, out.HasEdge("l1", "r1"), "WithoutEdge did not remove the edge")
	assert.True(t, out.HasVertex("l1"), "WithoutEdge must keep both endpoints")
	assert.True(t, out.HasVertex("r1"), "WithoutEdge must keep both endpoints")
	assert.True(t, g.HasEdge("l1", "r1"), "WithoutEdge mutated the receiver")
	assert.True(t, out.HasEdge("l1", "r2"), "WithoutEdge removed an unrelated edge")
}

func TestWithoutEdge_AbsentEdgeIsNoop(t *testing.T) {
	g := triangleFreeSample()
	out := g.WithoutEdge("l2", "r2") // not an edge of g
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestWithoutEdgeEndpoints(t *testing.T) {
	g := triangleFreeSample()
	out := g.WithoutEdgeEndpoints("l1", "r1")

	assert.False(t, out.HasVertex("l1"), "WithoutEdgeEndpoints left an endpoint in place")
	assert.False(t, out.HasVertex("r1"), "WithoutEdgeEndpoints left an endpoint in place")
	assert.False(t, out.HasEdge("l1", "r2"), "dangling incident edge")
	assert.False(t, out.HasEdge("l2", "r1"), "dangling incident edge")
	assert.True(t, out.HasVertex("l2"), "removed an unrelated vertex")
	assert.Equal(t, 3, g.EdgeCount(), "WithoutEdgeEndpoints mutated the receiver")
}

func TestWithoutVertices(t *testing.T) {
	g := triangleFreeSample()
	out := g.WithoutVertices([]string{"l1", "r1"})

	assert.False(t, out.HasVertex("l1"))
	assert.False(t, out.HasVertex("r1"))
	assert.True(t, out.HasVertex("l2"), "removed an unrelated vertex")
	assert.Equal(t, 3, g.EdgeCount(), "WithoutVertices mutated the receiver")
}

func TestWithoutVertices_IgnoresAbsentIDs(t *testing.T) {
	g := triangleFreeSample()
	out := g.WithoutVertices([]string{"ghost"})
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
}
