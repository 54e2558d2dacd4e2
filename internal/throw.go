package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through every splice and classification step of ear
// clipping would add a lot of noise to the code. Instead, we use panics, and
// the public API recovers to convert to an error.

type TriangulateError error

var (
	// ErrInvalidInput is returned when a polygon has fewer than three points,
	// or an extrusion depth is not usable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoEar is returned when ear clipping runs out of ears before the
	// polygon is reduced to a triangle. This only happens for polygons that
	// are not simple or are wound clockwise.
	ErrNoEar = errors.Wrap(ErrInvalidInput, "no ear left to clip")
)

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a TriangulateError wrapping one of the sentinels above.
func fatal(cause error, format string, args ...interface{}) {
	panic(errors.Wrapf(cause, format, args...))
}

func requirePolygon(n int) {
	if n < 3 {
		fatal(ErrInvalidInput, "a polygon needs at least 3 vertices, got %d", n)
	}
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors are bugs, not bad input
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
