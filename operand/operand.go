package operand

// Operand is the arithmetic surface the integrator requires of a
// matrix-valued integrand sample. All binary operations demand identical
// shapes and report ErrShapeMismatch otherwise.
//
// Implementations need not be safe for concurrent use; the integrator
// drives them from a single goroutine.
type Operand interface {
	// NewLike returns a zeroed operand of the same shape, drawn from the
	// same backing pool when one is attached.
	NewLike() Operand

	// CopyFrom overwrites the receiver with src.
	CopyFrom(src Operand) error

	// Zero sets every entry to zero.
	Zero()

	// Scale multiplies every entry by alpha in place.
	Scale(alpha complex128)

	// AddScaled sets the receiver to alpha·self + beta·other.
	AddScaled(alpha, beta complex128, other Operand) error

	// AbsWeightedSum reduces the operand to Σᵢⱼ |selfᵢⱼ|·wᵢⱼ.
	AbsWeightedSum(w *Weights) (float64, error)

	// Release returns the operand's storage to its pool, if any. The operand
	// must not be used afterwards.
	Release()
}
