package spectrogram

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestNewAnalyzerSanitizesConfig(t *testing.T) {
	a, err := NewAnalyzer(Config{FFTSize: 1000, Overlap: 0.99})
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	cfg := a.Config()
	if cfg.FFTSize != 2048 {
		t.Errorf("FFTSize = %d, want fallback 2048", cfg.FFTSize)
	}

	if cfg.Overlap != 0.95 {
		t.Errorf("Overlap = %v, want clamp to 0.95", cfg.Overlap)
	}

	if cfg.Window != "hann" {
		t.Errorf("Window = %q, want default hann", cfg.Window)
	}
}

func TestNewAnalyzerDefaultOverlap(t *testing.T) {
	a, err := NewAnalyzer(Config{FFTSize: 1024})
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	if got := a.Config().Overlap; got != 0.75 {
		t.Errorf("Overlap = %v, want default 0.75", got)
	}

	if got := a.HopSize(); got != 256 {
		t.Errorf("HopSize = %d, want 256", got)
	}
}

func TestNewAnalyzerRejectsUnknownWindow(t *testing.T) {
	if _, err := NewAnalyzer(Config{Window: "kaiser"}); err == nil {
		t.Fatal("NewAnalyzer accepted unknown window name")
	}
}

func TestComputeSineTonePeaksAtExpectedBin(t *testing.T) {
	const (
		size = 1024
		rate = 44100.0
		bin  = 64
	)

	a, err := NewAnalyzer(Config{FFTSize: size, Overlap: 0.75})
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	freq := bin * rate / size
	sig := testutil.DeterministicSine(freq, rate, 1.0, 4096)

	res, err := a.Compute(sig, rate)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	wantFrames := 1 + (len(sig)-size)/a.HopSize()
	if len(res.PowerDB) != wantFrames {
		t.Fatalf("frame count = %d, want %d", len(res.PowerDB), wantFrames)
	}

	if len(res.Frequencies) != size/2+1 {
		t.Fatalf("bin count = %d, want %d", len(res.Frequencies), size/2+1)
	}

	if got := res.Frequencies[bin]; !core.NearlyEqual(got, freq, 1e-9) {
		t.Errorf("Frequencies[%d] = %v, want %v", bin, got, freq)
	}

	for f, row := range res.PowerDB {
		peak := 0
		for k := 1; k < len(row); k++ {
			if row[k] > row[peak] {
				peak = k
			}
		}

		if peak != bin {
			t.Fatalf("frame %d: peak bin = %d, want %d", f, peak, bin)
		}

		// A full-scale tone on an exact bin lands at 0 dBFS after the
		// coherent-gain normalization.
		if math.Abs(row[bin]) > 0.1 {
			t.Fatalf("frame %d: peak level = %v dB, want ~0", f, row[bin])
		}
	}
}

func TestComputeFrameTimesAdvanceByHop(t *testing.T) {
	const (
		size = 512
		rate = 8000.0
	)

	a, err := NewAnalyzer(Config{FFTSize: size, Overlap: 0.5})
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	res, err := a.Compute(testutil.DeterministicNoise(7, 0.5, 2048), rate)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if got := res.Times[0]; !core.NearlyEqual(got, size/2/rate, 1e-12) {
		t.Errorf("Times[0] = %v, want %v", got, size/2/rate)
	}

	step := float64(a.HopSize()) / rate
	for i := 1; i < len(res.Times); i++ {
		if got := res.Times[i] - res.Times[i-1]; !core.NearlyEqual(got, step, 1e-12) {
			t.Fatalf("Times[%d]-Times[%d] = %v, want %v", i, i-1, got, step)
		}
	}
}

func TestComputeSilenceHitsFloor(t *testing.T) {
	res, err := Compute(testutil.Silence(1024), 44100, Config{FFTSize: 256})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	for f, row := range res.PowerDB {
		for k, v := range row {
			if v != MinDB {
				t.Fatalf("PowerDB[%d][%d] = %v, want floor %v", f, k, v, MinDB)
			}
		}
	}
}

func TestComputeShortSignal(t *testing.T) {
	_, err := Compute(testutil.Silence(100), 44100, Config{FFTSize: 256})
	if !errors.Is(err, ErrShortSignal) {
		t.Fatalf("Compute error = %v, want ErrShortSignal", err)
	}
}

func TestComputeInvalidSampleRate(t *testing.T) {
	_, err := Compute(testutil.Silence(4096), 0, Config{})
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("Compute error = %v, want ErrInvalidSampleRate", err)
	}
}
