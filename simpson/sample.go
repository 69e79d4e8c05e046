package simpson

import "github.com/katalvlaran/contourquad/operand"

// sample is a reference-counted handle around one weighted integrand value.
// A boundary sample is owned by up to two adjacent subintervals at once;
// the count replaces the original scheme of peeking at whether a neighbor
// interval still exists, which left a converged/absent distinction
// ambiguous. Here a sample is freed exactly when its last holder lets go,
// no neighbor inspection involved.
type sample struct {
	op   operand.Operand
	refs int
}

// newSample wraps op with zero holders; every owner must retain explicitly.
func newSample(op operand.Operand) *sample {
	return &sample{op: op}
}

// retain registers one more holder and returns the sample for chaining.
func (s *sample) retain() *sample {
	s.refs++

	return s
}

// release drops one holder and frees the operand with the last one.
func (s *sample) release() {
	if s == nil {
		return
	}
	s.refs--
	if s.refs == 0 {
		s.op.Release()
		s.op = nil
	}
}
