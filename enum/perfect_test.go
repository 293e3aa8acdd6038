package enum_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bforacle"
	"github.com/katalvlaran/bimatch/bibuilder"
	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/enum"
	"github.com/katalvlaran/bimatch/hopkarp"
)

func collect(seq *enum.Sequence) []hopkarp.Matching {
	var out []hopkarp.Matching
	for {
		m, ok := seq.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}

func matchingKey(m hopkarp.Matching) string {
	pairs := make([]string, 0, len(m))
	for l, r := range m {
		pairs = append(pairs, l+"="+r)
	}
	sort.Strings(pairs)
	key := ""
	for _, p := range pairs {
		key += p + ";"
	}
	return key
}

func distinctKeys(ms []hopkarp.Matching) map[string]bool {
	keys := make(map[string]bool, len(ms))
	for _, m := range ms {
		keys[matchingKey(m)] = true
	}
	return keys
}

func TestPerfect_EmptyGraph(t *testing.T) {
	g := bigraph.NewGraph()
	got := collect(enum.Perfect(g))
	require.Len(t, got, 1, "Perfect(empty graph) must yield exactly one matching")
	assert.Empty(t, got[0])
}

func TestPerfect_UnequalSides(t *testing.T) {
	g, err := bibuilder.Complete(2, 3)
	require.NoError(t, err)
	assert.Empty(t, collect(enum.Perfect(g)), "Perfect(2,3) must be empty (unequal sides)")
}

func TestPerfect_K22_MatchesOracle(t *testing.T) {
	g, err := bibuilder.CompleteBipartite(2)
	require.NoError(t, err)

	got := collect(enum.Perfect(g))
	want := bforacle.BruteForcePerfect(g)

	require.Lenf(t, got, len(want), "Perfect(K_2,2) yielded %d matchings; oracle found %d", len(got), len(want))
	gotKeys, wantKeys := distinctKeys(got), distinctKeys(want)
	assert.Lenf(t, gotKeys, len(got), "Perfect(K_2,2) yielded a duplicate matching")
	for k := range wantKeys {
		assert.Truef(t, gotKeys[k], "Perfect(K_2,2) missed matching %q found by the oracle", k)
	}
}

func TestPerfect_K33_CountsSixFactorial(t *testing.T) {
	g, err := bibuilder.CompleteBipartite(3)
	require.NoError(t, err)

	got := collect(enum.Perfect(g))
	require.Len(t, got, 6, "Perfect(K_3,3) must yield 3! = 6 matchings")
	assert.Len(t, distinctKeys(got), 6, "Perfect(K_3,3) must yield 6 distinct matchings")
	for _, m := range got {
		assert.Len(t, m, 3)
	}
}

func TestPerfect_EverySoundAndDistinct(t *testing.T) {
	g, err := bibuilder.Cubelets()
	require.NoError(t, err)

	got := collect(enum.Perfect(g))
	for _, m := range got {
		seenR := map[string]bool{}
		require.Lenf(t, m, len(g.Top()), "matching size must equal %d (perfect)", len(g.Top()))
		for l, r := range m {
			assert.Truef(t, g.HasEdge(l, r), "matching uses non-edge {%s, %s}", l, r)
			assert.Falsef(t, seenR[r], "matching reuses RIGHT vertex %s", r)
			seenR[r] = true
		}
	}
	assert.Len(t, distinctKeys(got), len(got), "Perfect(Cubelets) must not yield a duplicate matching")
}
