package transform

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var (
	ErrEmptyInput        = errors.New("transform: input signal is empty")
	ErrEmptySpectrum     = errors.New("transform: spectrum is empty")
	ErrInvalidSampleRate = errors.New("transform: sample rate must be positive")
)

// Forward computes the full complex DFT of a real sequence.
//
// The output has the same length as the input. For real input the result is
// conjugate-symmetric: bin k and bin N-k are complex conjugates.
func Forward(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	return fft.FFTReal(signal), nil
}

// Inverse computes the inverse DFT and returns only the real part.
//
// The imaginary residue left by floating-point rounding is discarded by
// design; callers that edit spectra through [EnforceHermitianSymmetry] get a
// real signal up to rounding anyway.
func Inverse(spectrum []complex128) ([]float64, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptySpectrum
	}

	res := fft.IFFT(spectrum)

	out := make([]float64, len(res))
	for i, c := range res {
		out[i] = real(c)
	}

	return out, nil
}

// FrequencyBins returns the frequency in Hz of each of the n DFT bins, in
// ascending bin index order.
//
// The layout matches the conventional DFT sample-frequency ordering: bins
// 0..(n-1)/2 carry the non-negative frequencies k*sampleRate/n, the
// remaining bins carry the negative mirror (k-n)*sampleRate/n.
func FrequencyBins(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d bins", ErrEmptyInput, n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	out := make([]float64, n)
	split := (n-1)/2 + 1

	for k := 0; k < split; k++ {
		out[k] = float64(k) * sampleRate / float64(n)
	}

	for k := split; k < n; k++ {
		out[k] = float64(k-n) * sampleRate / float64(n)
	}

	return out, nil
}

// HalfLength returns the number of positive-half bins used for display and
// band mapping: indices 0..n/2-1.
func HalfLength(n int) int {
	if n < 0 {
		return 0
	}

	return n / 2
}

// PositiveFrequencies returns the frequencies of the positive-half bins.
func PositiveFrequencies(n int, sampleRate float64) ([]float64, error) {
	bins, err := FrequencyBins(n, sampleRate)
	if err != nil {
		return nil, err
	}

	return bins[:HalfLength(n)], nil
}

// PositiveMagnitudes returns |X[k]| for the positive-half bins.
func PositiveMagnitudes(spectrum []complex128) []float64 {
	return Magnitude(spectrum[:HalfLength(len(spectrum))])
}

// EnforceHermitianSymmetry rewrites the negative-frequency bins of spectrum
// in place as conjugate mirrors of the positive half, so that the inverse
// transform yields a real signal.
//
// Bins k = n/2+1 .. n-1 become conj(spectrum[n-k]). For even n this mirrors
// n/2-1 bins and leaves the Nyquist bin at n/2 untouched; for odd n it
// mirrors n/2 bins. The asymmetry is deliberate and must match the forward
// transform's layout bin for bin.
func EnforceHermitianSymmetry(spectrum []complex128) {
	n := len(spectrum)

	for k := n/2 + 1; k < n; k++ {
		spectrum[k] = cmplx.Conj(spectrum[n-k])
	}
}
