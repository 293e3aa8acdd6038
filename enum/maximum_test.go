package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bforacle"
	"github.com/katalvlaran/bimatch/bibuilder"
	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/enum"
)

func TestMaximum_EmptyGraph(t *testing.T) {
	g := bigraph.NewGraph()
	assert.Empty(t, collect(enum.Maximum(g)), "Maximum(graph with no edges) must yield nothing")
}

func TestMaximum_K23_MatchesOracle(t *testing.T) {
	g, err := bibuilder.Complete(2, 3)
	require.NoError(t, err)

	got := collect(enum.Maximum(g))
	want := bforacle.BruteForceMaximum(g)

	require.Lenf(t, got, len(want), "Maximum(K_2,3) yielded %d matchings; oracle found %d", len(got), len(want))
	gotKeys, wantKeys := distinctKeys(got), distinctKeys(want)
	assert.Lenf(t, gotKeys, len(got), "Maximum(K_2,3) yielded a duplicate matching")
	for k := range wantKeys {
		assert.Truef(t, gotKeys[k], "Maximum(K_2,3) missed matching %q found by the oracle", k)
	}
}

func TestMaximum_AllSameCardinality(t *testing.T) {
	g, err := bibuilder.PathBipartite(3)
	require.NoError(t, err)

	got := collect(enum.Maximum(g))
	require.NotEmpty(t, got, "want at least one maximum matching")
	want := len(got[0])
	for _, m := range got {
		assert.Lenf(t, m, want, "every maximum matching must share a cardinality")
		for l, r := range m {
			assert.Truef(t, g.HasEdge(l, r), "matching uses non-edge {%s, %s}", l, r)
		}
	}
	assert.Len(t, distinctKeys(got), len(got), "Maximum(PathBipartite(3)) must not yield a duplicate matching")
}

func TestMaximum_CompleteBipartite_CountsPermutationsTimesChoose(t *testing.T) {
	// K_3,5: choose which 3 of the 5 RIGHT vertices are used (C(5,3) = 10),
	// times the 3! orderings in which LEFT vertices claim them = 60.
	g, err := bibuilder.Complete(3, 5)
	require.NoError(t, err)

	got := collect(enum.Maximum(g))
	require.Len(t, got, 60, "Maximum(K_3,5) must yield 60 matchings")
	assert.Len(t, distinctKeys(got), 60, "Maximum(K_3,5) must yield 60 distinct matchings")
}
