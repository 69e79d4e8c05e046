package contour

import "errors"

var (
	// ErrUnknownShape indicates a shape identifier outside the declared enum.
	ErrUnknownShape = errors.New("contour: unknown curve shape")
	// ErrDegenerateArc indicates an Arc whose endpoints coincide, leaving the
	// circle center and radius undefined.
	ErrDegenerateArc = errors.New("contour: arc endpoints must differ")
	// ErrNodeCount indicates a node request too small to include both endpoints.
	ErrNodeCount = errors.New("contour: at least two nodes required")
)
