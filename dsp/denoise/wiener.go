package denoise

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/transform"
)

// State tracks the denoiser through its selection/estimation/apply cycle.
type State int

const (
	StateUninitialized State = iota
	StateRangeSelected
	StatePowerEstimated
	StateApplied
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRangeSelected:
		return "range-selected"
	case StatePowerEstimated:
		return "power-estimated"
	case StateApplied:
		return "applied"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// WienerGain computes the per-bin suppression gain
// power[k]/(power[k]+alpha*noisePower) over the full spectrum.
//
// With conjugate-symmetric input power the gain is symmetric too, so
// applying it elementwise to the complex spectrum preserves Hermitian
// symmetry. A zero noise power yields unity gain on every non-silent bin.
func WienerGain(power []float64, noisePower, alpha float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		denom := p + alpha*noisePower
		if denom == 0 {
			// Silent bin with zero noise estimate: nothing to suppress.
			out[i] = 0
			continue
		}
		out[i] = p / denom
	}
	return out
}

// DefaultAlpha is the neutral noise-scaling factor. The reference control
// surface exposes 1..1e6.
const DefaultAlpha = 1.0

// Option configures a Denoiser.
type Option func(*Denoiser)

// WithAlpha sets the noise-scaling factor. Non-positive values are ignored.
func WithAlpha(alpha float64) Option {
	return func(d *Denoiser) {
		if alpha > 0 {
			d.alpha = alpha
		}
	}
}

// Denoiser drives the Wiener filter through its selection, estimation and
// apply cycle. It is re-entrant: the caller may move the selection window
// and reapply at any time, which returns the state machine to
// [StateRangeSelected].
//
// A Denoiser is owned by a single goroutine; the selection window is only
// read at the moment Apply or EstimatePower is invoked.
type Denoiser struct {
	alpha      float64
	window     Window
	noisePower float64
	state      State
}

// NewDenoiser returns a Denoiser in StateUninitialized.
func NewDenoiser(opts ...Option) *Denoiser {
	d := &Denoiser{alpha: DefaultAlpha}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// State returns the current lifecycle state.
func (d *Denoiser) State() State {
	return d.state
}

// Alpha returns the noise-scaling factor.
func (d *Denoiser) Alpha() float64 {
	return d.alpha
}

// SetAlpha updates the noise-scaling factor.
func (d *Denoiser) SetAlpha(alpha float64) error {
	if alpha <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidAlpha, alpha)
	}

	d.alpha = alpha
	return nil
}

// NoisePower returns the most recent estimate, 0 before any estimation.
func (d *Denoiser) NoisePower() float64 {
	return d.noisePower
}

// SetWindow records the noise-selection window and (re)enters
// StateRangeSelected, discarding any previous estimate.
func (d *Denoiser) SetWindow(w Window) {
	d.window = w
	d.noisePower = 0
	d.state = StateRangeSelected
}

// Window returns the current selection window.
func (d *Denoiser) Window() Window {
	return d.window
}

// EstimatePower slices the selection window out of signal and estimates the
// noise power from its variance. On success the state advances to
// StatePowerEstimated. An empty selection yields ErrNoEstimate and leaves
// the state unchanged.
func (d *Denoiser) EstimatePower(signal []float64, sampleRate float64) (float64, error) {
	if d.state == StateUninitialized {
		return 0, ErrNoWindow
	}

	power, err := EstimatePower(SelectRange(signal, sampleRate, d.window))
	if err != nil {
		return 0, err
	}

	d.noisePower = power
	d.state = StatePowerEstimated

	return power, nil
}

// Apply runs the full Wiener cycle on signal: estimate noise power from the
// selection window, build the per-bin gain, scale the spectrum and return
// the reconstructed real signal of the same length.
//
// When the selection yields no samples or the estimated noise power is
// exactly 0, the input signal is returned unmodified together with
// ErrNoEstimate: no filtering occurred and the caller is told so. This is
// the single documented policy for the zero-noise-power edge; a silent
// pass-through would hide a meaningless estimate.
func (d *Denoiser) Apply(signal []float64, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("denoise: %w: %f", transform.ErrInvalidSampleRate, sampleRate)
	}
	if len(signal) == 0 {
		return nil, fmt.Errorf("denoise: %w", transform.ErrEmptyInput)
	}
	if d.state == StateUninitialized {
		return nil, ErrNoWindow
	}

	noisePower, err := d.EstimatePower(signal, sampleRate)
	if err != nil {
		return signal, err
	}
	if noisePower == 0 {
		return signal, ErrNoEstimate
	}

	spectrum, err := transform.Forward(signal)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	gain := WienerGain(transform.Power(spectrum), noisePower, d.alpha)
	for i := range spectrum {
		spectrum[i] *= complex(gain[i], 0)
	}

	out, err := transform.Inverse(spectrum)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	d.state = StateApplied

	return out, nil
}

// Apply is the one-shot form: select window, estimate, filter.
func Apply(signal []float64, sampleRate float64, window Window, alpha float64) ([]float64, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidAlpha, alpha)
	}

	d := NewDenoiser(WithAlpha(alpha))
	d.SetWindow(window)

	return d.Apply(signal, sampleRate)
}
