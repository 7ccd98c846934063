package spectra

import (
	"errors"
	"fmt"
)

// ErrConvergence matches every [*ConvergenceError].
var ErrConvergence = errors.New("spectra: boundary search did not converge")

// ConvergenceError reports a window search that gave up.
type ConvergenceError struct {
	Iterations int
	Span       float64
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("spectra: boundary search stopped after %d iterations at span %g: %s",
		e.Iterations, e.Span, e.Reason)
}

// Is reports whether target is [ErrConvergence].
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}
