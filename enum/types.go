// Package enum implements Takeaki Uno's 1997 polynomial-delay
// enumeration algorithm over a bigraph.Graph: Perfect, Maximum, and
// Maximal each return a Sequence that yields one matching per call to
// Next, computing the next matching only when asked.
//
// Go has no native generators, so each Sequence is backed by an
// explicit stack of pending recursion frames rather than a goroutine
// or channel: Next pops a frame, and processing it may push further
// frames (zero or two for Perfect and Maximum; one per candidate edge
// or saturating matching for Maximal) before returning (or declining to
// return) a matching. This mirrors the two-way recursive split at the heart of
// Uno's algorithm — "yield a matching, then recurse twice" — as plain
// iterative control flow.
package enum

import "github.com/katalvlaran/bimatch/hopkarp"

// Sequence is a single-pass, pull-based iterator over matchings.
// A Sequence is not safe for concurrent use: it carries no locking of
// its own, matching the single-threaded enumeration model the
// matchgraph and hopkarp packages are also built around.
type Sequence struct {
	s stepper
}

// Next returns the next matching in the sequence, or (nil, false) once
// exhausted. Exhaustion is permanent: once Next returns false it keeps
// returning false.
func (sq *Sequence) Next() (hopkarp.Matching, bool) {
	if sq.s == nil {
		return nil, false
	}
	return sq.s.next()
}

// Err reports the invariant violation (if any) that cut the sequence
// short. Only meaningful once Next has returned false; always nil when
// bimatch.Debug is true, since a Debug build panics at the point of
// violation instead of surfacing it here.
func (sq *Sequence) Err() error {
	if sq.s == nil {
		return nil
	}
	return sq.s.lastErr()
}

// drainAll exhausts sq and collects every matching it yields. Used
// internally by Maximal, which needs every maximum matching of an
// induced subgraph at once to spawn one recursion frame per matching.
func (sq *Sequence) drainAll() ([]hopkarp.Matching, error) {
	var out []hopkarp.Matching
	for {
		m, ok := sq.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out, sq.Err()
}

// stepper is the internal state machine behind a Sequence. Perfect,
// Maximum, and Maximal each have their own concrete stepper, since
// their recursion frames carry different state (Maximum's frames carry
// a matchgraph.Digraph that Perfect's do not, and Maximal's carry an
// accumulated prefix matching that neither of the others need).
type stepper interface {
	next() (hopkarp.Matching, bool)
	lastErr() error
}

func cloneMatching(m hopkarp.Matching) hopkarp.Matching {
	out := make(hopkarp.Matching, len(m))
	for l, r := range m {
		out[l] = r
	}
	return out
}

// mergeMatching returns a fresh matching holding every pair of dst,
// overlaid with every pair of src (src wins on key collision).
func mergeMatching(dst, src hopkarp.Matching) hopkarp.Matching {
	out := cloneMatching(dst)
	for l, r := range src {
		out[l] = r
	}
	return out
}
