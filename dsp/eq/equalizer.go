package eq

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/transform"
)

// ErrNotLoaded is returned when an operation requires a loaded signal.
var ErrNotLoaded = errors.New("eq: no signal loaded")

// ApplyBand applies one band's gain setting to workingMag in place.
//
// For every positive-half bin i with positiveFreqs[i] in [band.MinHz,
// band.MaxHz): GainMute zeroes the bin, any other gain sets
// originalMag[i] * GainFactor(band.Gain). Bins are always recomputed from
// the original magnitudes, never from previous edits, so repeated band
// adjustments are independent and non-overlapping bands commute. A
// degenerate band touches nothing.
//
// Returns the number of bins modified.
func ApplyBand(positiveFreqs, originalMag, workingMag []float64, band Band) int {
	if band.Degenerate() {
		return 0
	}

	factor := GainFactor(band.Gain)
	touched := 0

	for i, f := range positiveFreqs {
		if !band.Contains(f) {
			continue
		}

		if band.Gain == GainMute {
			workingMag[i] = 0
		} else {
			workingMag[i] = originalMag[i] * factor
		}
		touched++
	}

	return touched
}

// Equalizer is a stateful engine instance holding the working spectrum of
// the currently loaded signal, so repeated gain adjustments avoid
// re-running the forward transform.
//
// An Equalizer is owned by a single goroutine; operations are synchronous
// and run to completion. Load replaces the whole cache at once, so band
// operations never observe a partially updated state.
type Equalizer struct {
	sampleRate  float64
	signal      []float64
	spectrum    []complex128
	posFreqs    []float64
	originalMag []float64
	phase       []float64
	workingMag  []float64
}

// New returns an Equalizer with no signal loaded.
func New() *Equalizer {
	return &Equalizer{}
}

// Load computes and caches the spectrum of signal, replacing any previously
// loaded signal. All derived state (positive frequencies, original
// magnitudes, phases, working magnitudes) is rebuilt from scratch.
func (e *Equalizer) Load(signal []float64, sampleRate float64) error {
	spectrum, err := transform.Forward(signal)
	if err != nil {
		return fmt.Errorf("eq: load: %w", err)
	}

	posFreqs, err := transform.PositiveFrequencies(len(signal), sampleRate)
	if err != nil {
		return fmt.Errorf("eq: load: %w", err)
	}

	half := transform.HalfLength(len(spectrum))
	originalMag := transform.Magnitude(spectrum[:half])
	phase := transform.Phase(spectrum[:half])

	workingMag := make([]float64, half)
	copy(workingMag, originalMag)

	retained := make([]float64, len(signal))
	copy(retained, signal)

	// Swap the cache in whole only after every derived slice is ready.
	e.sampleRate = sampleRate
	e.signal = retained
	e.spectrum = spectrum
	e.posFreqs = posFreqs
	e.originalMag = originalMag
	e.phase = phase
	e.workingMag = workingMag

	return nil
}

// Loaded reports whether a signal is cached.
func (e *Equalizer) Loaded() bool {
	return len(e.spectrum) > 0
}

// Length returns the loaded signal length, 0 when nothing is loaded.
func (e *Equalizer) Length() int {
	return len(e.signal)
}

// SampleRate returns the loaded signal's sample rate.
func (e *Equalizer) SampleRate() float64 {
	return e.sampleRate
}

// Nyquist returns half the loaded sample rate.
func (e *Equalizer) Nyquist() float64 {
	return e.sampleRate / 2
}

// SetBandGain applies band to the working magnitudes. Returns the number of
// bins modified; a degenerate or out-of-range band modifies none.
func (e *Equalizer) SetBandGain(band Band) (int, error) {
	if !e.Loaded() {
		return 0, ErrNotLoaded
	}

	return ApplyBand(e.posFreqs, e.originalMag, e.workingMag, band), nil
}

// SetBandGains applies each band in order. On overlap the last applied band
// wins per bin.
func (e *Equalizer) SetBandGains(bands []Band) error {
	if !e.Loaded() {
		return ErrNotLoaded
	}

	for _, b := range bands {
		ApplyBand(e.posFreqs, e.originalMag, e.workingMag, b)
	}

	return nil
}

// Reset restores the working magnitudes to the original spectrum, as if
// every band control were back at neutral.
func (e *Equalizer) Reset() error {
	if !e.Loaded() {
		return ErrNotLoaded
	}

	copy(e.workingMag, e.originalMag)

	return nil
}

// Reconstruct rebuilds the time-domain signal from the working magnitudes.
//
// Each positive-half coefficient is rebuilt as workingMag[k]*e^(j*phase[k])
// with the phase taken from the original spectrum, the negative half is
// conjugate-mirrored, and the inverse transform's real part is returned.
// The output has the same length as the loaded signal.
func (e *Equalizer) Reconstruct() ([]float64, error) {
	if !e.Loaded() {
		return nil, ErrNotLoaded
	}

	tmp := make([]complex128, len(e.spectrum))
	copy(tmp, e.spectrum)

	for k := range e.workingMag {
		tmp[k] = cmplx.Rect(e.workingMag[k], e.phase[k])
	}

	transform.EnforceHermitianSymmetry(tmp)

	out, err := transform.Inverse(tmp)
	if err != nil {
		return nil, fmt.Errorf("eq: reconstruct: %w", err)
	}

	return out, nil
}

// PositiveFrequencies returns a copy of the positive-half bin frequencies.
func (e *Equalizer) PositiveFrequencies() []float64 {
	return copySlice(e.posFreqs)
}

// Magnitudes returns a copy of the current working magnitudes.
func (e *Equalizer) Magnitudes() []float64 {
	return copySlice(e.workingMag)
}

// OriginalMagnitudes returns a copy of the unmodified magnitudes.
func (e *Equalizer) OriginalMagnitudes() []float64 {
	return copySlice(e.originalMag)
}

// MagnitudesDB returns the working magnitudes in dB (20*log10), -Inf for
// zeroed bins. This is the audiogram-scale view of the spectrum.
func (e *Equalizer) MagnitudesDB() []float64 {
	out := make([]float64, len(e.workingMag))
	for i, m := range e.workingMag {
		out[i] = core.LinearToDB(m)
	}
	return out
}

func copySlice(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
