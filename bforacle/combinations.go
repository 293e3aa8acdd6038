package bforacle

import "github.com/katalvlaran/bimatch/bigraph"

// combinations calls emit once for every size-k subset of edges, in
// lexicographic index order, without allocating the full C(n,k) set at
// once.
func combinations(edges []bigraph.Edge, k int, emit func(subset []bigraph.Edge)) {
	n := len(edges)
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	subset := make([]bigraph.Edge, k)
	for {
		for i, j := range idx {
			subset[i] = edges[j]
		}
		emit(subset)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
