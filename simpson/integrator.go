package simpson

import (
	"math"
	"sort"

	"github.com/katalvlaran/contourquad/contour"
	"github.com/katalvlaran/contourquad/operand"
)

// Integrator carries the full state of one adaptive contour integration.
// Construct with New, then drive the request/supply loop:
//
//	ts, xs := integ.InitialNodes()
//	err := integ.Refine(evaluate(xs))        // 4k+1 samples, in order
//	for {
//	    ts, xs = integ.NextNodes()
//	    if len(xs) == 0 { break }            // converged, nothing outstanding
//	    err = integ.Refine(evaluate(xs))     // 4 samples per outstanding subinterval
//	}
//
// Refine takes ownership of the supplied operands: it scales them in place
// by the contour weight and releases them when their subintervals retire.
// The caller must not touch a sample after handing it over.
//
// Not safe for concurrent use; the evaluation of integrand batches between
// calls may of course be parallel.
type Integrator struct {
	crv  contour.Curve
	conv float64
	rule Rule

	// errW holds |weights|/15: the Simpson local-truncation constant is
	// baked in once so the raw Richardson residual reduces directly to a
	// calibrated error scalar.
	errW *operand.Weights

	integral     operand.Operand // best estimate, rebuilt by every Refine
	integralConv operand.Operand // frozen contribution of retired subintervals
	errTotal     float64
	errConv      float64

	outstanding []*subinterval
	tnodes      []float64 // every node ever requested, in request order
	pending     []float64 // nodes handed out, awaiting their samples
	initCount   int
	started     bool
	converged   bool
	released    bool
}

// New builds an Integrator over crv with per-entry error weights and the
// given options.
//
// The initial node count is rounded down to the nearest 4k+1 so the first
// batch splits into whole five-point panels; Options.RestartNodes, when
// set, replaces the equidistant layout verbatim (and takes precedence over
// InitialNodes). Subintervals materialize on the first Refine call, which
// is when the integrand values arrive.
func New(crv contour.Curve, weights *operand.Weights, opts Options) (*Integrator, error) {
	if weights == nil {
		return nil, ErrNilWeights
	}
	if !(opts.Conv > 0) || math.IsInf(opts.Conv, 1) {
		return nil, ErrBadConv
	}

	var nodes []float64
	if opts.RestartNodes != nil {
		if err := validateRestart(opts.RestartNodes); err != nil {
			return nil, err
		}
		nodes = append([]float64(nil), opts.RestartNodes...)
	} else {
		if opts.InitialNodes <= 4 {
			return nil, ErrTooFewNodes
		}
		n := (opts.InitialNodes-1)/4*4 + 1
		var err error
		nodes, err = contour.EquidistantNodes(-1, 1, n)
		if err != nil {
			return nil, err
		}
	}

	return &Integrator{
		crv:       crv,
		conv:      opts.Conv,
		rule:      opts.Rule,
		errW:      weights.AbsScaled(1.0 / 15.0),
		errTotal:  math.Inf(1),
		tnodes:    nodes,
		pending:   append([]float64(nil), nodes...),
		initCount: len(nodes),
	}, nil
}

// validateRestart checks the 4k+1 ascending layout spanning [-1,1] that
// Nodes() produces and the first Refine call relies on.
func validateRestart(nodes []float64) error {
	n := len(nodes)
	if n < 5 || (n-1)%4 != 0 {
		return ErrBadRestart
	}
	if nodes[0] != -1 || nodes[n-1] != 1 {
		return ErrBadRestart
	}
	for i := 1; i < n; i++ {
		if nodes[i] <= nodes[i-1] {
			return ErrBadRestart
		}
	}

	return nil
}

// InitialNodes returns the first evaluation batch: the normalized
// parameters and the matching contour points, in the order Refine expects
// the samples. The batch is a stable record; it stays valid after
// refinement begins.
func (g *Integrator) InitialNodes() (ts []float64, xs []complex128) {
	ts = append([]float64(nil), g.tnodes[:g.initCount]...)
	xs, _ = g.crv.MapAll(ts)

	return ts, xs
}

// NextNodes returns the next evaluation batch: four fresh points per
// outstanding subinterval, at offsets 1/8, 3/8, 5/8 and 7/8 of its span —
// the future panel midpoints of its two halves. An empty result signals
// that the loop is finished: either nothing has been refined yet, or the
// integral has converged.
//
// The returned parameters are appended to the node trail, so a later
// restart reproduces the same trajectory.
func (g *Integrator) NextNodes() (ts []float64, xs []complex128) {
	if g.released || !g.started || g.converged || len(g.outstanding) == 0 {
		return nil, nil
	}

	ts = make([]float64, 0, 4*len(g.outstanding))
	for _, sub := range g.outstanding {
		w := sub.width()
		ts = append(ts,
			sub.lb+w/8,
			sub.lb+3*w/8,
			sub.lb+5*w/8,
			sub.lb+7*w/8,
		)
	}
	g.tnodes = append(g.tnodes, ts...)
	g.pending = append([]float64(nil), ts...)
	xs, _ = g.crv.MapAll(ts)

	return ts, xs
}

// Refine consumes the integrand values for the most recent node batch and
// advances the adaptive state: it weight-scales the samples, builds the
// initial panels (first call) or bisects every outstanding subinterval
// (later calls), re-estimates each subinterval, folds converged ones into
// the frozen accumulators, and recomputes the global integral and error.
//
// samples must match the last handed-out batch in length and order.
func (g *Integrator) Refine(samples []operand.Operand) error {
	if g.released {
		return ErrReleased
	}
	if len(g.pending) == 0 || len(samples) != len(g.pending) {
		return ErrSampleCount
	}
	for _, s := range samples {
		if s == nil {
			return ErrNilSample
		}
	}

	// Integration happens in weighted, curve-independent form: fold the
	// reparameterization weight dx/dt into every new sample up front.
	handles := make([]*sample, len(samples))
	for i, t := range g.pending {
		_, w := g.crv.Map(t)
		samples[i].Scale(w)
		handles[i] = newSample(samples[i])
	}

	if !g.started {
		g.buildInitial(handles)
	} else {
		g.bisectOutstanding(handles)
	}
	g.pending = nil

	return g.reestimate(handles[0].op)
}

// buildInitial partitions the 4k+1 first-call samples into k panels that
// share their boundary samples, each granted an equal slice of the global
// error budget.
func (g *Integrator) buildInitial(handles []*sample) {
	k := (len(handles) - 1) / 4
	g.outstanding = make([]*subinterval, 0, k)
	layout := g.tnodes[:g.initCount]
	for i := 0; i < k; i++ {
		base := 4 * i
		g.outstanding = append(g.outstanding, &subinterval{
			lb:   layout[base],
			ub:   layout[base+4],
			conv: g.conv / float64(k),
			fa:   handles[base].retain(),
			fb:   handles[base+1].retain(),
			fc:   handles[base+2].retain(),
			fd:   handles[base+3].retain(),
			fe:   handles[base+4].retain(),
		})
	}
	g.started = true
}

// bisectOutstanding splits every outstanding subinterval at its midpoint,
// threading the four fresh samples in as the children's panel midpoints.
func (g *Integrator) bisectOutstanding(handles []*sample) {
	next := make([]*subinterval, 0, 2*len(g.outstanding))
	for i, parent := range g.outstanding {
		base := 4 * i
		left, right := parent.bisect(handles[base], handles[base+1], handles[base+2], handles[base+3])
		next = append(next, left, right)
	}
	g.outstanding = next
}

// reestimate recomputes every outstanding subinterval's value and error
// indicator, rebuilds the global integral and error from the frozen
// accumulators upward, folds freshly converged subintervals in, and retires
// them from the worklist. template supplies the sample shape for scratch
// and accumulator allocation.
func (g *Integrator) reestimate(template operand.Operand) error {
	if g.integralConv == nil {
		g.integralConv = template.NewLike()
		g.integral = template.NewLike()
	}
	if err := g.integral.CopyFrom(g.integralConv); err != nil {
		return err
	}

	est := template.NewLike()
	resid := template.NewLike()
	defer est.Release()
	defer resid.Release()

	total := g.errConv
	keep := g.outstanding[:0]
	for _, sub := range g.outstanding {
		est.Zero()
		resid.Zero()
		if err := sub.accumulate(g.rule, est, resid); err != nil {
			return err
		}
		e, err := resid.AbsWeightedSum(g.errW)
		if err != nil {
			return err
		}
		sub.lastErr = e
		total += e
		if err = g.integral.AddScaled(1, 1, est); err != nil {
			return err
		}

		if e <= sub.conv {
			// Fold the contribution in once and never revisit this segment.
			if err = g.integralConv.AddScaled(1, 1, est); err != nil {
				return err
			}
			g.errConv += e
			sub.releaseSamples()
		} else {
			keep = append(keep, sub)
		}
	}
	g.errTotal = total

	if total <= g.conv {
		g.converged = true
		for _, sub := range keep {
			sub.releaseSamples()
		}
		keep = keep[:0]
	}
	// Drop retired tails so their subintervals become collectable.
	for i := len(keep); i < len(g.outstanding); i++ {
		g.outstanding[i] = nil
	}
	g.outstanding = keep

	return nil
}

// Integral returns a caller-owned copy of the best current estimate. When
// the samples are pool-backed the copy is drawn from the same pool and must
// be released by the caller. Returns ErrNoEstimate before the first Refine.
func (g *Integrator) Integral() (operand.Operand, error) {
	if g.released {
		return nil, ErrReleased
	}
	if g.integral == nil {
		return nil, ErrNoEstimate
	}

	out := g.integral.NewLike()
	if err := out.CopyFrom(g.integral); err != nil {
		out.Release()

		return nil, err
	}

	return out, nil
}

// ErrorEstimate returns the current weighted global error bound: the frozen
// error of retired subintervals plus the latest indicator of every live
// one. +Inf before the first Refine.
func (g *Integrator) ErrorEstimate() float64 { return g.errTotal }

// Converged reports whether the global error has met the target.
func (g *Integrator) Converged() bool { return g.converged }

// Outstanding returns the number of subintervals still awaiting refinement.
func (g *Integrator) Outstanding() int { return len(g.outstanding) }

// Nodes returns the complete node trail in ascending order — exactly the
// layout Options.RestartNodes accepts, so a related integrand can reuse the
// refined grid in a single Refine call.
func (g *Integrator) Nodes() []float64 {
	out := append([]float64(nil), g.tnodes...)
	sort.Float64s(out)

	return out
}

// Release frees every retained operand: live subinterval samples and both
// integral accumulators. Further use of the integrator returns ErrReleased.
// Safe to call once; subsequent calls are no-ops.
func (g *Integrator) Release() {
	if g.released {
		return
	}
	g.released = true

	for _, sub := range g.outstanding {
		sub.releaseSamples()
	}
	g.outstanding = nil
	g.pending = nil
	if g.integral != nil {
		g.integral.Release()
		g.integral = nil
	}
	if g.integralConv != nil {
		g.integralConv.Release()
		g.integralConv = nil
	}
}
