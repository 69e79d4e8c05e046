// Package simpson implements self-refining Simpson quadrature for
// matrix-valued integrands along complex contours, with explicit error
// control and per-subinterval accuracy budgets.
//
// What:
//
//   - Integrator owns the integration state: the contour, the convergence
//     target, the best current integral, the accumulated error, and an
//     ordered worklist of not-yet-converged subintervals of the normalized
//     parameter domain [-1,1].
//   - The caller drives an explicit request/supply loop: InitialNodes (or
//     NextNodes) hands out evaluation points, the caller computes the
//     integrand there — serially, in parallel, or on a remote runtime —
//     and Refine folds the values back in.
//   - Each Refine bisects every outstanding subinterval, re-estimates the
//     two-panel Simpson value and its Richardson error indicator, folds
//     converged pieces into frozen accumulators, and recomputes the global
//     integral and error from scratch.
//   - Boundary samples are shared between adjacent subintervals through
//     reference-counted handles, so refinement costs 4 fresh evaluations
//     per split, never 5.
//
// Why:
//
//   - Contour integrands (retarded Green's functions, resolvent traces) are
//     expensive; the loop shape lets the caller batch and distribute the
//     evaluations while the integrator stays single-threaded and simple.
//   - Per-entry importance weighting turns a matrix-valued residual into a
//     single calibrated error scalar, so convergence is judged in the
//     quantity the caller actually cares about.
//
// Algorithm, per subinterval [lb,ub] with samples fa..fe at lb, lb+w/4,
// lb+w/2, lb+3w/4, ub (w = ub-lb, all pre-scaled by the contour weight):
//
//	S₂  = w/12·(fa + 4fb + 2fc + 4fd + fe)   two-panel Simpson
//	S₁  = w/6·(fa + 4fc + fe)                one-panel Simpson
//	err = Σ |S₁-S₂|ᵢⱼ · |W|ᵢⱼ/15             Richardson indicator
//
// With Options.Rule = RuleBoole the accumulated value upgrades to
// w/90·(7fa + 32fb + 12fc + 32fd + 7fe); the error indicator stays
// Simpson-based.
//
// Termination: the integrator itself never caps the number of rounds. A
// still-large ErrorEstimate after a caller-imposed round cap is a soft
// failure — keep the best estimate, flag low confidence. NextNodes
// returning an empty slice is the converged-and-done signal.
//
// Errors:
//
//   - ErrTooFewNodes: fewer than five initial nodes requested.
//   - ErrBadConv: convergence target not a positive finite number.
//   - ErrNilWeights: missing weights matrix.
//   - ErrBadRestart: restart node trail violating the 4k+1 panel layout.
//   - ErrSampleCount: Refine received a batch of unexpected length.
//   - ErrNilSample: a nil operand inside a Refine batch.
//   - ErrNoEstimate: Integral requested before the first Refine.
//   - ErrReleased: use after Release.
package simpson
