package canvas

import "errors"

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("canvas: x and y lengths differ")
	// ErrEmptyTrace is returned for a trace without points.
	ErrEmptyTrace = errors.New("canvas: empty trace")
)

func checkTrace(x, y []float64) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	if len(y) == 0 {
		return ErrEmptyTrace
	}
	return nil
}
