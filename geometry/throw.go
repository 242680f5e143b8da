package geometry

import "github.com/pkg/errors"

// Threading errors up and down the recursive decomposition and distance
// routines would bury the geometry under error plumbing. Instead, the routines
// panic with a GeometryError, and every public boundary recovers it into a
// regular error with HandlePanicRecover.

var (
	// Degenerate segment, non-finite coordinate, too few vertices.
	ErrInvalidInput = errors.New("invalid input")
	// A split point could not be located on the polygon boundary.
	ErrPointsNotOnBoundary = errors.New("points not on boundary")
	// A recursion or iteration bound was exceeded. This signals a geometric
	// degeneracy the algorithms cannot resolve.
	ErrDecompositionDivergence = errors.New("decomposition divergence")
)

// GeometryError is the panic payload used internally. It wraps one of the
// sentinel errors above, so errors.Is works on recovered values.
type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(GeometryError{errors.Wrapf(kind, format, args...)})
}

// Convert a recovered panic into an error. Panics that did not come from this
// package are re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

// Run fn, converting a geometry panic into an error.
func Try(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
