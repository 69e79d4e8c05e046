package simpson

// Rule selects the quadrature formula accumulated per subinterval.
//
//   - RuleSimpson — composite two-panel Simpson, the classical choice.
//   - RuleBoole   — five-point Boole's rule, one order more accurate when
//     the integrand is smooth; the error indicator remains Simpson-based.
type Rule int

const (
	// RuleSimpson accumulates the composite two-panel Simpson estimate.
	RuleSimpson Rule = iota
	// RuleBoole accumulates the five-point Boole estimate instead.
	RuleBoole
)

// Options configures an Integrator.
//
// Fields:
//   - InitialNodes — requested size of the first evaluation batch; must be
//     greater than 4 and is silently rounded down to the nearest 4k+1 so
//     the batch splits into whole five-point panels.
//   - Conv — absolute convergence target for the weighted global error.
//   - Rule — accumulation formula, RuleSimpson by default.
//   - RestartNodes — optional node trail from a previous run's Nodes();
//     when set it replaces the equidistant initial layout verbatim, so a
//     related integrand can be evaluated on the exact same points.
//
// Example:
//
//	opts := simpson.DefaultOptions()
//	opts.InitialNodes = 9
//	opts.Conv = 1e-10
type Options struct {
	InitialNodes int
	Conv         float64
	Rule         Rule
	RestartNodes []float64
}

// DefaultOptions returns the baseline configuration: 33 initial nodes
// (eight panels), a 1e-8 convergence target, Simpson accumulation.
func DefaultOptions() Options {
	return Options{
		InitialNodes: 33,
		Conv:         1e-8,
		Rule:         RuleSimpson,
	}
}
