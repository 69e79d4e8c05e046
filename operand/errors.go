package operand

import "errors"

var (
	// ErrBadShape indicates a matrix with non-positive dimensions was requested.
	ErrBadShape = errors.New("operand: dimensions must be > 0")
	// ErrShapeMismatch indicates two operands (or an operand and a weights
	// matrix) of differing shapes were combined.
	ErrShapeMismatch = errors.New("operand: shape mismatch")
	// ErrNilOperand indicates a nil operand where a value is required.
	ErrNilOperand = errors.New("operand: nil operand")
)
