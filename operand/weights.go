package operand

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Weights is a real matrix of per-entry importance factors, shaped like the
// integrand samples it will be reduced against. A typical use is an
// overlap-matrix weighting that turns a density-matrix error into an
// electron-count error. Immutable once constructed.
type Weights struct {
	m *mat.Dense
}

// NewWeights returns an r×c weights matrix. data is used in row-major order
// when non-nil (its length must be r·c); a nil data yields all zeros.
// Returns ErrBadShape for non-positive dimensions or a mis-sized data slice.
func NewWeights(r, c int, data []float64) (*Weights, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	if data != nil && len(data) != r*c {
		return nil, ErrBadShape
	}

	return &Weights{m: mat.NewDense(r, c, data)}, nil
}

// Ones returns an r×c weights matrix with every entry set to one, the
// unweighted reduction Σ|Mᵢⱼ|.
func Ones(r, c int) (*Weights, error) {
	w, err := NewWeights(r, c, nil)
	if err != nil {
		return nil, err
	}
	d := w.data()
	for i := range d {
		d[i] = 1
	}

	return w, nil
}

// Dims returns the matrix dimensions.
func (w *Weights) Dims() (r, c int) { return w.m.Dims() }

// At returns the entry at row i, column j.
func (w *Weights) At(i, j int) float64 { return w.m.At(i, j) }

// AbsScaled returns a new weights matrix with entries |wᵢⱼ|·s. The
// integrator uses it to bake the Simpson truncation constant 1/15 into its
// error-reduction weights once, at initialization.
func (w *Weights) AbsScaled(s float64) *Weights {
	r, c := w.m.Dims()
	out := &Weights{m: mat.NewDense(r, c, nil)}
	od, wd := out.data(), w.data()
	for i, v := range wd {
		od[i] = math.Abs(v) * s
	}

	return out
}

// data exposes the contiguous backing slice; stride == cols by construction.
func (w *Weights) data() []float64 {
	raw := w.m.RawMatrix()

	return raw.Data[:raw.Rows*raw.Cols]
}
