package contour

import (
	"math"
	"math/cmplx"
)

// Shape selects the geometry of a Curve.
//
//   - Linear — straight segment from A to B.
//   - Arc    — half-circle from A to B centered at their midpoint.
type Shape int

const (
	// Linear traces the straight segment between the endpoints.
	Linear Shape = iota
	// Arc traces the clockwise half-circle between the endpoints.
	Arc
)

// String returns the shape name for diagnostics.
func (s Shape) String() string {
	switch s {
	case Linear:
		return "Linear"
	case Arc:
		return "Arc"
	default:
		return "Shape(?)"
	}
}

// valid reports whether s is a declared shape.
func (s Shape) valid() bool {
	return s == Linear || s == Arc
}

// Curve is an immutable parameterized path from A to B in the complex plane.
// Construct it with New; Map on a Curve with an undeclared Shape panics,
// since only a hand-rolled literal can reach that state.
type Curve struct {
	// A and B are the endpoints: x(-1) = A, x(1) = B.
	A, B complex128
	// Shape selects the path geometry between the endpoints.
	Shape Shape
}

// New validates and returns a Curve from a to b with the given shape.
// Returns ErrUnknownShape for an undeclared shape and ErrDegenerateArc
// when an Arc is requested with a == b.
func New(a, b complex128, shape Shape) (Curve, error) {
	if !shape.valid() {
		return Curve{}, ErrUnknownShape
	}
	if shape == Arc && a == b {
		return Curve{}, ErrDegenerateArc
	}

	return Curve{A: a, B: b, Shape: shape}, nil
}

// Map evaluates the curve at normalized parameter t ∈ [-1,1], returning the
// point x(t) and the weight w(t) = dx/dt.
//
// Linear: x = A + (t+1)/2·(B-A), w = (B-A)/2 for every t.
//
// Arc: with c = (A+B)/2 the circle center, x(t) = c + (A-c)·e^{iφ(t)} where
// φ(t) = -π(1+t)/2, i.e. a clockwise sweep of half a turn; w = -(iπ/2)·(A-c)·e^{iφ(t)}.
// The endpoints t = ±1 are returned exactly, free of trigonometric roundoff.
func (c Curve) Map(t float64) (x, w complex128) {
	switch c.Shape {
	case Linear:
		half := (c.B - c.A) * 0.5

		return c.A + complex(t+1, 0)*half, half
	case Arc:
		center := (c.A + c.B) * 0.5
		arm := c.A - center
		phase := cmplx.Exp(complex(0, -0.5*math.Pi*(1+t)))
		w = complex(0, -0.5*math.Pi) * arm * phase
		// Endpoints must be bitwise exact: e^{0} = 1 holds, e^{-iπ} = -1 does
		// not quite, so pin both explicitly.
		switch t {
		case -1:
			return c.A, w
		case 1:
			return c.B, w
		default:
			return center + arm*phase, w
		}
	default:
		panic("contour: unknown curve shape")
	}
}

// MapAll maps every parameter in ts, returning the evaluation points and the
// matching weights in order. Convenience over Map for batch node requests.
func (c Curve) MapAll(ts []float64) (xs, ws []complex128) {
	xs = make([]complex128, len(ts))
	ws = make([]complex128, len(ts))
	for i, t := range ts {
		xs[i], ws[i] = c.Map(t)
	}

	return xs, ws
}
