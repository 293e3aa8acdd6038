package bibuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bibuilder"
)

func TestComplete_EdgeCount(t *testing.T) {
	g, err := bibuilder.Complete(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3*2, g.EdgeCount())
	assert.Len(t, g.Top(), 3)
	assert.Len(t, g.Bottom(), 2)
}

func TestComplete_TooFewVertices(t *testing.T) {
	_, err := bibuilder.Complete(0, 2)
	assert.Error(t, err)
}

func TestCompleteBipartite_Balanced(t *testing.T) {
	g, err := bibuilder.CompleteBipartite(4)
	require.NoError(t, err)
	assert.True(t, g.SidesEqualSize())
	assert.Equal(t, 16, g.EdgeCount())
}

func TestPathBipartite_HasOneCycle(t *testing.T) {
	g, err := bibuilder.PathBipartite(3)
	require.NoError(t, err)
	// l0-r0, l1-r0, l1-r1, l2-r1, l2-r2, l0-r2 (closing edge) = 6 edges.
	assert.Equal(t, 6, g.EdgeCount())
	for _, l := range g.Top() {
		assert.Equalf(t, 2, g.Degree(l), "Degree(%s)", l)
	}
}

func TestCubelets_Shape(t *testing.T) {
	g, err := bibuilder.Cubelets()
	require.NoError(t, err)
	require.Len(t, g.Top(), 8)
	require.Len(t, g.Bottom(), 8)
	// Position 0 wants letter 'F': verify via degree instead of hard-coding
	// indices, to stay robust to fixture reordering.
	assert.NotZero(t, g.Degree("l0"), "position 0 (letter F) must have at least one candidate cubelet")
}

func TestCustomIDScheme(t *testing.T) {
	g, err := bibuilder.Complete(2, 2,
		bibuilder.WithLeftIDScheme(func(i int) string { return "X" + string(rune('a'+i)) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Xa", "Xb"}, g.Top())
}
