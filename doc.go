// Package bimatch enumerates matchings in bipartite graphs.
//
// Given a finite bipartite graph G = (L ∪ R, E), bimatch produces, as a
// lazy sequence without duplicates, every perfect matching, every maximum
// matching, or every maximal matching of G. The enumeration core
// implements Takeaki Uno's 1997 algorithm together with its two
// prerequisites: a Hopcroft–Karp maximum-cardinality matcher and the
// directed matching graph / SCC trimming construction the enumeration
// depends on for polynomial delay between successive outputs.
//
// Everything is organized under flat subpackages:
//
//	bigraph/    — the bipartite Graph/Side/Edge model
//	hopkarp/    — Hopcroft–Karp maximum matching
//	matchgraph/ — directed matching graph, cycle finder, SCC trimmer
//	enum/       — the enumeration engine: Perfect, Maximum, Maximal
//	bibuilder/  — deterministic bipartite graph constructors
//	bforacle/   — brute-force oracle used only by enum's tests
//
// Out of scope: weighted matchings, non-bipartite matching, parallel
// execution, persistence, incremental updates, and streaming graphs that
// do not fit in memory.
package bimatch
