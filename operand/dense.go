package operand

import (
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Dense is a dense complex matrix operand backed by gonum's mat.CDense.
// A Dense obtained from a Pool recycles its storage on Release; one built
// with NewDense is left to the garbage collector.
type Dense struct {
	m    *mat.CDense
	pool *Pool
}

// compile-time conformance check
var _ Operand = (*Dense)(nil)

// NewDense returns a zeroed r×c Dense with no pool attached.
// Returns ErrBadShape for non-positive dimensions.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{m: mat.NewCDense(r, c, nil)}, nil
}

// Scalar wraps a single complex value as a 1×1 Dense, the natural carrier
// for scalar-valued integrands.
func Scalar(v complex128) *Dense {
	d := &Dense{m: mat.NewCDense(1, 1, nil)}
	d.m.Set(0, 0, v)

	return d
}

// Dims returns the matrix dimensions.
func (d *Dense) Dims() (r, c int) { return d.m.Dims() }

// At returns the entry at row i, column j.
func (d *Dense) At(i, j int) complex128 { return d.m.At(i, j) }

// Set assigns the entry at row i, column j.
func (d *Dense) Set(i, j int, v complex128) { d.m.Set(i, j, v) }

// data exposes the contiguous backing slice. Every Dense is allocated with
// stride == cols, so the raw data covers exactly the matrix entries.
func (d *Dense) data() []complex128 {
	raw := d.m.RawCMatrix()

	return raw.Data[:raw.Rows*raw.Cols]
}

// NewLike returns a zeroed Dense of the same shape, pooled when the
// receiver is pooled.
func (d *Dense) NewLike() Operand {
	r, c := d.m.Dims()
	if d.pool != nil {
		return d.pool.mustGet(r, c)
	}
	nd, _ := NewDense(r, c)

	return nd
}

// CopyFrom overwrites the receiver with src, which must be a *Dense of the
// same shape.
func (d *Dense) CopyFrom(src Operand) error {
	sd, err := d.conform(src)
	if err != nil {
		return err
	}
	copy(d.data(), sd.data())

	return nil
}

// Zero sets every entry to zero.
func (d *Dense) Zero() { d.m.Zero() }

// Scale multiplies every entry by alpha in place.
func (d *Dense) Scale(alpha complex128) {
	cmplxs.Scale(alpha, d.data())
}

// AddScaled sets the receiver to alpha·self + beta·other.
func (d *Dense) AddScaled(alpha, beta complex128, other Operand) error {
	od, err := d.conform(other)
	if err != nil {
		return err
	}
	if alpha != 1 {
		cmplxs.Scale(alpha, d.data())
	}
	cmplxs.AddScaled(d.data(), beta, od.data())

	return nil
}

// AbsWeightedSum returns Σᵢⱼ |dᵢⱼ|·wᵢⱼ, the weighted trace used to collapse
// a matrix-valued error indicator into a single scalar.
func (d *Dense) AbsWeightedSum(w *Weights) (float64, error) {
	if w == nil {
		return 0, ErrNilOperand
	}
	r, c := d.m.Dims()
	wr, wc := w.Dims()
	if r != wr || c != wc {
		return 0, ErrShapeMismatch
	}

	var sum float64
	wd := w.data()
	for i, v := range d.data() {
		sum += cmplx.Abs(v) * wd[i]
	}

	return sum, nil
}

// Release hands the storage back to the attached pool. Without a pool it is
// a no-op; the garbage collector takes over.
func (d *Dense) Release() {
	if d.pool != nil {
		d.pool.put(d)
	}
}

// conform asserts src is a non-nil *Dense of the receiver's shape.
func (d *Dense) conform(src Operand) (*Dense, error) {
	if src == nil {
		return nil, ErrNilOperand
	}
	sd, ok := src.(*Dense)
	if !ok {
		// Dense only combines with Dense; a foreign backend cannot share storage.
		return nil, ErrShapeMismatch
	}
	if sd == nil {
		return nil, ErrNilOperand
	}
	r, c := d.m.Dims()
	sr, sc := sd.m.Dims()
	if r != sr || c != sc {
		return nil, ErrShapeMismatch
	}

	return sd, nil
}
