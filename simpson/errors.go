package simpson

import "errors"

var (
	// ErrTooFewNodes indicates an initial node request of four or fewer;
	// one five-point panel is the minimum the rule can work with.
	ErrTooFewNodes = errors.New("simpson: initial node count must exceed 4")
	// ErrBadConv indicates a convergence target that is not a positive finite number.
	ErrBadConv = errors.New("simpson: convergence target must be positive and finite")
	// ErrNilWeights indicates a missing error-reduction weights matrix.
	ErrNilWeights = errors.New("simpson: weights matrix is nil")
	// ErrBadRestart indicates restart nodes that do not form an ascending
	// 4k+1 layout spanning [-1,1].
	ErrBadRestart = errors.New("simpson: invalid restart node trail")
	// ErrSampleCount indicates a Refine batch whose length does not match
	// the nodes handed out by InitialNodes or NextNodes.
	ErrSampleCount = errors.New("simpson: sample count does not match requested nodes")
	// ErrNilSample indicates a nil operand inside a Refine batch.
	ErrNilSample = errors.New("simpson: nil integrand sample")
	// ErrNoEstimate indicates the integral was requested before any Refine call.
	ErrNoEstimate = errors.New("simpson: no estimate before first refinement")
	// ErrReleased indicates use of an integrator after Release.
	ErrReleased = errors.New("simpson: integrator already released")
)
