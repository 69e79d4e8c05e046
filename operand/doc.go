// Package operand defines the matrix abstraction consumed by the adaptive
// integrator, together with a gonum-backed dense implementation and a
// shape-keyed buffer pool.
//
// What:
//
//   - Operand is the minimal arithmetic surface a matrix-valued integrand
//     sample must offer: same-shape creation, copy, complex scaling, fused
//     scale-and-accumulate, a weighted absolute reduction, and release.
//   - Dense implements Operand on top of gonum's mat.CDense; Scalar wraps a
//     single complex value as a 1×1 Dense for scalar integrands.
//   - Weights is a real matrix of per-entry importance factors; the
//     integrator reduces a matrix-valued error indicator to one scalar via
//     Σ|Mᵢⱼ|·Wᵢⱼ (the weighted trace).
//   - Pool recycles Dense buffers by shape, so a long refinement loop does
//     not churn allocations of identically shaped scratch matrices.
//
// Why:
//
//   - The integrator never inspects matrix entries; it only combines whole
//     samples linearly and reduces error indicators. Keeping that contract
//     in an interface lets callers back samples with any storage — a local
//     CDense here, a handle into a distributed runtime elsewhere.
//   - Boundary samples are shared between adjacent subintervals, so release
//     must be explicit rather than left to garbage collection when buffers
//     live in a pool.
//
// Concurrency:
//
//   - Pool is safe for concurrent Get/Release — callers commonly evaluate
//     integrand batches in parallel. Individual Operands are not.
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions requested.
//   - ErrShapeMismatch: operands or weights of differing shapes combined.
//   - ErrNilOperand: nil operand passed where a value is required.
package operand
