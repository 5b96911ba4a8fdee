package eq

import (
	"fmt"
	"strings"
)

// Discrete gain-control range. GainMute silences a band outright rather
// than scaling it to zero through the gain curve.
const (
	GainMin     = 0
	GainNeutral = 5
	GainMax     = 10

	GainMute = GainMin
)

// Band is a half-open frequency interval [MinHz, MaxHz) with a discrete
// gain-control value. A band with MinHz >= MaxHz selects no bins and is a
// silent no-op when applied.
type Band struct {
	Label string
	MinHz float64
	MaxHz float64
	Gain  int
}

// Degenerate reports whether the band covers no frequency range.
func (b Band) Degenerate() bool {
	return b.MinHz >= b.MaxHz
}

// Contains reports whether freqHz falls in [MinHz, MaxHz).
func (b Band) Contains(freqHz float64) bool {
	return freqHz >= b.MinHz && freqHz < b.MaxHz
}

// GainFactor maps a discrete gain value to its linear magnitude multiplier:
// 1 + (gain-GainNeutral)*0.2. The curve is fixed; neutral is unity and each
// step moves the multiplier by 20%. Values outside the control range are
// clamped. GainMute is handled by the caller, not through this curve.
func GainFactor(gain int) float64 {
	if gain < GainMin {
		gain = GainMin
	}
	if gain > GainMax {
		gain = GainMax
	}

	return 1 + float64(gain-GainNeutral)*0.2
}

// Mode selects which band set the equalizer presents.
type Mode int

const (
	ModeUniform Mode = iota
	ModeMusical
	ModeAnimalSong
	ModeECG
	ModeWiener
)

// DefaultUniformBandCount is the number of contiguous bands ModeUniform
// presents by default.
const DefaultUniformBandCount = 10

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUniform:
		return "Uniform"
	case ModeMusical:
		return "Musical"
	case ModeAnimalSong:
		return "Animal Song"
	case ModeECG:
		return "ECG Abnormalities"
	case ModeWiener:
		return "Wiener Filter"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode display name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform":
		return ModeUniform, nil
	case "musical":
		return ModeMusical, nil
	case "animal song", "animalsong":
		return ModeAnimalSong, nil
	case "ecg abnormalities", "ecg":
		return ModeECG, nil
	case "wiener filter", "wiener":
		return ModeWiener, nil
	default:
		return 0, fmt.Errorf("eq: unknown mode: %q", name)
	}
}

// UniformBands partitions [0, nyquist) into count contiguous equal-width
// bands at neutral gain. Returns nil for non-positive count or nyquist.
func UniformBands(count int, nyquist float64) []Band {
	if count <= 0 || nyquist <= 0 {
		return nil
	}

	width := nyquist / float64(count)
	out := make([]Band, count)
	for i := range out {
		lo := float64(i) * width
		hi := float64(i+1) * width
		out[i] = Band{
			Label: fmt.Sprintf("%.1f-%.1f Hz", lo, hi),
			MinHz: lo,
			MaxHz: hi,
			Gain:  GainNeutral,
		}
	}
	return out
}

// MusicalBands returns the fixed instrument/vocal band set at neutral gain.
func MusicalBands() []Band {
	return []Band{
		{Label: "Drums", MinHz: 0, MaxHz: 400, Gain: GainNeutral},
		{Label: "Violin", MinHz: 400, MaxHz: 4000, Gain: GainNeutral},
		{Label: "OOOh", MinHz: 200, MaxHz: 800, Gain: GainNeutral},
		{Label: "R", MinHz: 1320, MaxHz: 4400, Gain: GainNeutral},
		{Label: "S", MinHz: 2200, MaxHz: 13500, Gain: GainNeutral},
		{Label: "Xylophone", MinHz: 4000, MaxHz: 20000, Gain: GainNeutral},
	}
}

// AnimalSongBands returns the fixed animal/instrument band set at neutral gain.
func AnimalSongBands() []Band {
	return []Band{
		{Label: "Trumpet", MinHz: 0, MaxHz: 600, Gain: GainNeutral},
		{Label: "Whale", MinHz: 600, MaxHz: 1200, Gain: GainNeutral},
		{Label: "Piano", MinHz: 1200, MaxHz: 1600, Gain: GainNeutral},
		{Label: "Frog", MinHz: 1600, MaxHz: 2800, Gain: GainNeutral},
		{Label: "Cardinal", MinHz: 2800, MaxHz: 3600, Gain: GainNeutral},
		{Label: "Xylophone", MinHz: 4000, MaxHz: 20000, Gain: GainNeutral},
	}
}

// ECGBands returns the fixed ECG abnormality band set at neutral gain.
func ECGBands() []Band {
	return []Band{
		{Label: "Normal", MinHz: 0, MaxHz: 22000, Gain: GainNeutral},
		{Label: "AFib", MinHz: 200, MaxHz: 450, Gain: GainNeutral},
		{Label: "VT", MinHz: 80, MaxHz: 864, Gain: GainNeutral},
		{Label: "VC", MinHz: 0, MaxHz: 1000, Gain: GainNeutral},
	}
}

// Bands returns the band set a mode presents for the given Nyquist
// frequency. ModeWiener replaces band controls with the denoiser's noise
// power control and therefore has no bands.
func Bands(m Mode, nyquist float64) []Band {
	switch m {
	case ModeUniform:
		return UniformBands(DefaultUniformBandCount, nyquist)
	case ModeMusical:
		return MusicalBands()
	case ModeAnimalSong:
		return AnimalSongBands()
	case ModeECG:
		return ECGBands()
	default:
		return nil
	}
}
