// Package grid holds the render window and the frequency grid every spectrum is
// sampled on.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidResolution = errors.New("grid: resolution must be >= 1")
	ErrInvalidSpan       = errors.New("grid: span must be finite and > 0")
	ErrInvalidOffset     = errors.New("grid: offset must be finite")
	ErrInvalidDetuning   = errors.New("grid: detuning must be finite")
)

// RenderConfig describes the sampled frequency window: Resolution points over
// [Offset−Span, Offset+Span).
type RenderConfig struct {
	Resolution int
	Span       float64
	Offset     float64
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns the start-up window: 2000 points over ±10 around 0.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Resolution: 2000,
		Span:       10,
		Offset:     0,
	}
}

// WithResolution sets the number of equally spaced points.
func WithResolution(n int) RenderOption {
	return func(rc *RenderConfig) {
		if n > 0 {
			rc.Resolution = n
		}
	}
}

// WithSpan sets the half-width of the window.
func WithSpan(span float64) RenderOption {
	return func(rc *RenderConfig) {
		if span > 0 {
			rc.Span = span
		}
	}
}

// WithOffset sets the window center.
func WithOffset(offset float64) RenderOption {
	return func(rc *RenderConfig) {
		rc.Offset = offset
	}
}

// NewRenderConfig applies zero or more options to the default config.
func NewRenderConfig(opts ...RenderOption) RenderConfig {
	rc := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&rc)
		}
	}
	return rc
}

// Validate reports whether the window can be sampled.
func (rc RenderConfig) Validate() error {
	if rc.Resolution < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidResolution, rc.Resolution)
	}
	if !(rc.Span > 0) || math.IsInf(rc.Span, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpan, rc.Span)
	}
	if math.IsNaN(rc.Offset) || math.IsInf(rc.Offset, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidOffset, rc.Offset)
	}
	return nil
}

// Step returns the spacing of the equally spaced points.
func (rc RenderConfig) Step() float64 {
	return 2 * rc.Span / float64(rc.Resolution)
}

// Contains reports whether x lies strictly inside the window.
func (rc RenderConfig) Contains(x float64) bool {
	return rc.Offset-rc.Span < x && x < rc.Offset+rc.Span
}

// SpanFromSlider maps a span slider position to a half-width, exp(v/10)/10.
func SpanFromSlider(v float64) float64 {
	return math.Exp(v/10) / 10
}

// CenterOn returns the window offset for the "center on detuning" toggle.
func CenterOn(detuning float64, enabled bool) float64 {
	if enabled {
		return detuning
	}
	return 0
}
