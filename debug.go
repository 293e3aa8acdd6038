package bimatch

import "errors"

// ErrInvariantViolation is returned by enum operations when a
// release build detects a broken internal invariant (a cycle that does
// not alternate, a flip that does not produce a matching, a size
// mismatch between M and M') that would panic under Debug.
var ErrInvariantViolation = errors.New("bimatch: internal invariant violated")

// Debug gates the extra invariant assertions documented in spec: cycle
// alternation, flip validity, and |M'| = |M| for the maximum case. When
// Debug is false (the default), a violated invariant is reported as
// ErrInvariantViolation instead of panicking; when true, it panics with a
// descriptive message so the failure is caught close to its source during
// development.
var Debug = false
