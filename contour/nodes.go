package contour

import "gonum.org/v1/gonum/floats"

// EquidistantNodes returns n evenly spaced values spanning [lo, hi],
// including both endpoints. Returns ErrNodeCount when n < 2.
func EquidistantNodes(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrNodeCount
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}
