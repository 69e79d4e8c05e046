package simpson

import "github.com/katalvlaran/contourquad/operand"

// subinterval is the unit of adaptive refinement: a segment [lb,ub] of the
// normalized parameter domain holding five weighted samples at lb, lb+w/4,
// lb+w/2, lb+3w/4, ub. Boundary samples are shared with the neighbors via
// reference counts; see sample.
type subinterval struct {
	lb, ub float64
	// conv is this subinterval's share of the global error budget; children
	// of a bisection inherit half each.
	conv float64
	// lastErr is the most recent Richardson error indicator.
	lastErr float64

	fa, fb, fc, fd, fe *sample
}

// width returns ub - lb.
func (s *subinterval) width() float64 { return s.ub - s.lb }

// bisect splits s at its midpoint. The four fresh interior samples become
// the children's fb/fd; the parent's fa, fc, fe turn into the children's
// boundaries and its fb, fd into their midpoints. Budgets halve. The parent
// gives up its own holds, so purely interior samples survive only through
// the children.
func (s *subinterval) bisect(n1, n2, n3, n4 *sample) (left, right *subinterval) {
	mid := s.lb + s.width()/2
	left = &subinterval{
		lb:   s.lb,
		ub:   mid,
		conv: s.conv / 2,
		fa:   s.fa.retain(),
		fb:   n1.retain(),
		fc:   s.fb.retain(),
		fd:   n2.retain(),
		fe:   s.fc.retain(),
	}
	right = &subinterval{
		lb:   mid,
		ub:   s.ub,
		conv: s.conv / 2,
		fa:   s.fc.retain(),
		fb:   n3.retain(),
		fc:   s.fd.retain(),
		fd:   n4.retain(),
		fe:   s.fe.retain(),
	}
	s.releaseSamples()

	return left, right
}

// releaseSamples drops this subinterval's holds on all five samples.
func (s *subinterval) releaseSamples() {
	s.fa.release()
	s.fb.release()
	s.fc.release()
	s.fd.release()
	s.fe.release()
	s.fa, s.fb, s.fc, s.fd, s.fe = nil, nil, nil, nil, nil
}

// accumulate writes this subinterval's quadrature value into est and the
// Simpson Richardson residual S₁-S₂ into resid. Both must arrive zeroed and
// shaped like the samples.
//
// Coefficients, with h = width():
//
//	S₂          = h/12·(fa + 4fb + 2fc + 4fd + fe)
//	S₁          = h/6·(fa + 4fc + fe)
//	S₁-S₂       = h/12·(fa - 4fb + 6fc - 4fd + fe)
//	Boole       = h/90·(7fa + 32fb + 12fc + 32fd + 7fe)
func (s *subinterval) accumulate(rule Rule, est, resid operand.Operand) error {
	h := s.width()

	var coeffs [5]float64
	switch rule {
	case RuleBoole:
		c := h / 90
		coeffs = [5]float64{7 * c, 32 * c, 12 * c, 32 * c, 7 * c}
	default:
		c := h / 12
		coeffs = [5]float64{c, 4 * c, 2 * c, 4 * c, c}
	}

	ops := [5]operand.Operand{s.fa.op, s.fb.op, s.fc.op, s.fd.op, s.fe.op}
	for i, op := range ops {
		if err := est.AddScaled(1, complex(coeffs[i], 0), op); err != nil {
			return err
		}
	}

	c := h / 12
	residCoeffs := [5]float64{c, -4 * c, 6 * c, -4 * c, c}
	for i, op := range ops {
		if err := resid.AddScaled(1, complex(residCoeffs[i], 0), op); err != nil {
			return err
		}
	}

	return nil
}
