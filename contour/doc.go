// Package contour maps a normalized parameter t ∈ [-1,1] onto a curve in
// the complex plane and reports the reparameterization weight dx/dt.
//
// What:
//
//   - Curve binds two complex endpoints A, B to a Shape (Linear or Arc).
//   - Map(t) yields the evaluation point x(t) and the weight w(t) = dx/dt,
//     so that ∫ f(x) dx over the curve equals ∫ f(x(t))·w(t) dt over [-1,1].
//   - EquidistantNodes builds the evenly spaced node set used to seed an
//     adaptive integration.
//
// Why:
//
//   - Quadrature rules work on a fixed reference interval; the weight
//     absorbs the geometry of the actual path, so the same refinement
//     logic serves straight segments and circular arcs alike.
//   - Complex-contour integrals (resolvent traces, spectral projections)
//     routinely deform the path away from the real axis; Arc covers the
//     common semicircular deformation.
//
// Conventions:
//
//   - Linear: x(t) = A + (t+1)/2·(B-A), constant weight (B-A)/2.
//   - Arc: the half-circle centered at (A+B)/2 with radius |B-A|/2,
//     swept clockwise from A to B; for real A < B this places the arc in
//     the upper half-plane. x(-1) = A and x(1) = B hold exactly.
//
// Errors:
//
//   - ErrUnknownShape: shape identifier is not Linear or Arc.
//   - ErrDegenerateArc: Arc requested with coinciding endpoints.
//   - ErrNodeCount: fewer than two equidistant nodes requested.
package contour
