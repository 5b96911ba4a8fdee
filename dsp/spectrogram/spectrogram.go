package spectrogram

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

var (
	ErrShortSignal       = errors.New("spectrogram: signal shorter than one frame")
	ErrInvalidSampleRate = errors.New("spectrogram: sample rate must be positive")
)

const (
	// MinDB is the floor applied to every spectrogram cell.
	MinDB = -130.0

	eps = 1e-12
)

// Config describes the analysis settings. Zero values are replaced by
// defaults during sanitization, so Config{} is a usable starting point.
type Config struct {
	// FFTSize is the frame length in samples. Valid sizes are 256, 512,
	// 1024, 2048, 4096 and 8192; anything else falls back to 2048.
	FFTSize int

	// Overlap is the fraction of each frame shared with its successor,
	// clamped to [0.25, 0.95].
	Overlap float64

	// Window names the analysis window ("hann", "hamming", "blackman",
	// "blackmanharris", "flattop"). Empty selects Hann.
	Window string
}

func sanitizeConfig(cfg Config) Config {
	switch cfg.FFTSize {
	case 256, 512, 1024, 2048, 4096, 8192:
	default:
		cfg.FFTSize = 2048
	}

	if cfg.Overlap == 0 {
		cfg.Overlap = 0.75
	}

	cfg.Overlap = core.Clamp(cfg.Overlap, 0.25, 0.95)

	return cfg
}

// Result holds one power spectrogram. PowerDB is indexed
// [frame][bin] with FFTSize/2+1 bins per frame.
type Result struct {
	// Times gives the center of each frame in seconds.
	Times []float64

	// Frequencies gives the bin centers in hertz, from DC to Nyquist.
	Frequencies []float64

	// PowerDB holds per-frame magnitudes in dBFS, floored at MinDB.
	PowerDB [][]float64
}

// Analyzer computes spectrograms with a fixed frame size and window.
// It is not safe for concurrent use; the FFT scratch buffers are shared
// between calls.
type Analyzer struct {
	cfg     Config
	win     []float64
	winGain float64
	plan    *algofft.Plan[complex128]
	hop     int

	input  []complex128
	output []complex128
}

// NewAnalyzer builds an Analyzer from cfg after sanitizing it.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = sanitizeConfig(cfg)

	winType, err := window.ParseType(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("spectrogram window: %w", err)
	}

	cfg.Window = winType.Name()

	win := window.Generate(winType, cfg.FFTSize, window.WithPeriodic())

	gain, err := window.CoherentGain(win)
	if err != nil {
		return nil, fmt.Errorf("spectrogram window gain: %w", err)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("spectrogram fft plan: %w", err)
	}

	hop := int(math.Round(float64(cfg.FFTSize) * (1 - cfg.Overlap)))
	if hop < 1 {
		hop = 1
	}

	return &Analyzer{
		cfg:     cfg,
		win:     win,
		winGain: gain,
		plan:    plan,
		hop:     hop,
		input:   make([]complex128, cfg.FFTSize),
		output:  make([]complex128, cfg.FFTSize),
	}, nil
}

// Config returns the sanitized configuration in effect.
func (a *Analyzer) Config() Config { return a.cfg }

// HopSize returns the frame advance in samples derived from the overlap.
func (a *Analyzer) HopSize() int { return a.hop }

// Compute slices signal into overlapping frames and returns the power
// spectrogram. The signal must contain at least one full frame.
func (a *Analyzer) Compute(signal []float64, sampleRate float64) (*Result, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	size := a.cfg.FFTSize
	if len(signal) < size {
		return nil, ErrShortSignal
	}

	bins := size/2 + 1
	frames := 1 + (len(signal)-size)/a.hop

	res := &Result{
		Times:       make([]float64, frames),
		Frequencies: make([]float64, bins),
		PowerDB:     make([][]float64, frames),
	}

	for k := 0; k < bins; k++ {
		res.Frequencies[k] = float64(k) * sampleRate / float64(size)
	}

	norm := float64(size) * math.Max(a.winGain, eps)

	for f := 0; f < frames; f++ {
		start := f * a.hop
		frame := signal[start : start+size]

		for i, s := range frame {
			a.input[i] = complex(s*a.win[i], 0)
		}

		if err := a.plan.Forward(a.output, a.input); err != nil {
			return nil, fmt.Errorf("spectrogram fft: %w", err)
		}

		row := make([]float64, bins)
		for k := 0; k < bins; k++ {
			mag := cmplx.Abs(a.output[k]) / norm
			if k > 0 && k < bins-1 {
				mag *= 2
			}

			valDB := 20 * math.Log10(math.Max(eps, mag))
			if valDB < MinDB {
				valDB = MinDB
			}

			row[k] = valDB
		}

		res.PowerDB[f] = row
		res.Times[f] = (float64(start) + float64(size)/2) / sampleRate
	}

	return res, nil
}

// Compute is a one-shot convenience around NewAnalyzer and
// Analyzer.Compute.
func Compute(signal []float64, sampleRate float64, cfg Config) (*Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	return a.Compute(signal, sampleRate)
}
