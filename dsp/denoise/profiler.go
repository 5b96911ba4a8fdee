package denoise

import (
	"errors"
	"math"

	stattime "github.com/cwbudde/algo-spectral/stats/time"
)

var (
	ErrNoEstimate   = errors.New("denoise: no noise estimate available")
	ErrNoWindow     = errors.New("denoise: no noise window selected")
	ErrInvalidAlpha = errors.New("denoise: alpha must be positive")
)

// Window is a [Start, End) interval in seconds over a signal's duration,
// used to slice samples for noise estimation.
type Window struct {
	Start float64
	End   float64
}

// Duration returns End-Start, which may be non-positive for a degenerate
// window.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// SelectRange slices signal[round(Start*rate):round(End*rate)], clamped to
// the signal bounds. A degenerate or out-of-range window yields an empty
// slice; callers must treat that as "no estimate available", not as zero
// noise.
func SelectRange(signal []float64, sampleRate float64, w Window) []float64 {
	if len(signal) == 0 || sampleRate <= 0 {
		return nil
	}

	start := int(math.Round(w.Start * sampleRate))
	end := int(math.Round(w.End * sampleRate))

	if start < 0 {
		start = 0
	}
	if end > len(signal) {
		end = len(signal)
	}
	if start >= end {
		return nil
	}

	return signal[start:end]
}

// EstimatePower returns the sample variance of sub as the noise power
// estimate. An empty slice yields (0, ErrNoEstimate).
func EstimatePower(sub []float64) (float64, error) {
	if len(sub) == 0 {
		return 0, ErrNoEstimate
	}

	return stattime.Variance(sub), nil
}
