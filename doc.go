// Package contourquad is an adaptive quadrature toolkit for matrix-valued
// integrands along curves in the complex plane.
//
// 🚀 What is contourquad?
//
//	A small, self-contained library that brings together:
//		• Contours: linear segments and circular arcs, parameterized over [-1,1]
//		• Adaptive Simpson refinement with per-subinterval error budgets
//		• Optional Boole's-rule accumulation for an extra order of accuracy
//		• Matrix-valued integrands with weighted-trace error control
//		• A request/supply evaluation loop — you own the integrand, possibly
//		  evaluating it in parallel or on a remote linear-algebra runtime
//		• Restartable node trails for integrating related functions over the
//		  same contour without re-running the adaptive search
//
// ✨ Why choose contourquad?
//
//   - Explicit error control – every subinterval carries its own budget
//   - No callbacks – the integrator asks for points, you supply values
//   - Shared boundary samples – O(N) integrand evaluations, not O(5N)
//   - Pooled buffers – matrix scratch memory is recycled, not reallocated
//
// Everything is organized under three subpackages:
//
//	contour/ — curve parameterization: shapes, node placement, dx/dt weights
//	operand/ — matrix-valued operands, weights matrices, buffer pool
//	simpson/ — the adaptive Simpson integrator and its refinement loop
//
// Quick sketch of the driving loop:
//
//	ts, xs := integ.InitialNodes()
//	for len(xs) > 0 {
//	    _ = integ.Refine(evaluate(xs))
//	    ts, xs = integ.NextNodes()
//	}
//	_ = ts // the node trail doubles as a restart payload
//
// Dive into examples/ for a full matrix-valued walkthrough.
//
//	go get github.com/katalvlaran/contourquad
package contourquad
