// Package window provides analysis window functions for spectral framing.
//
// Only the cosine-sum windows exposed by the spectrogram analyzer are
// implemented; all are generated from their closed-form coefficients.
package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of the
// symmetric form used for filter design.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// cosine-sum coefficients, alternating sign convention:
// w(x) = a0 - a1*cos(2*pi*x) + a2*cos(4*pi*x) - ...
var cosineCoeffs = map[Type][]float64{
	TypeRectangular:         {1},
	TypeHann:                {0.5, 0.5},
	TypeHamming:             {0.54, 0.46},
	TypeBlackman:            {0.42, 0.5, 0.08},
	TypeBlackmanHarris4Term: {0.35875, 0.48829, 0.14128, 0.01168},
	TypeFlatTop:             {0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368},
}

// Generate returns window coefficients of the given length.
//
// Unknown types fall back to rectangular. A non-positive length yields nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs, ok := cosineCoeffs[t]
	if !ok {
		coeffs = cosineCoeffs[TypeRectangular]
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length, cfg.periodic)
		out[i] = cosineSum(x, coeffs)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// CoherentGain returns the mean of the coefficients. It is the amplitude
// scaling a windowed sine experiences and is used to normalize spectra.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// ParseType resolves a window name as used in analyzer configuration.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hann":
		return TypeHann, nil
	case "rectangular":
		return TypeRectangular, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "blackmanharris":
		return TypeBlackmanHarris4Term, nil
	case "flattop":
		return TypeFlatTop, nil
	default:
		return 0, &UnknownTypeError{Name: name}
	}
}

// Name returns the canonical configuration name for t.
func (t Type) Name() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeBlackmanHarris4Term:
		return "blackmanharris"
	case TypeFlatTop:
		return "flattop"
	default:
		return "unknown"
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	sum := 0.0
	sign := 1.0

	for k, a := range coeffs {
		sum += sign * a * math.Cos(2*math.Pi*float64(k)*x)
		sign = -sign
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	denom := size - 1
	if periodic {
		denom = size
	}

	if denom <= 0 {
		return 0
	}

	return float64(n) / float64(denom)
}
