package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
		{3, 1, 0, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("values within eps reported unequal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("distant values reported equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero self-comparison failed with default eps")
	}

	// Relative comparison for large magnitudes.
	if !NearlyEqual(1e12, 1e12+1, 1e-9) {
		t.Fatal("relative comparison failed for large values")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Fatalf("FlushDenormals(1e-40) = %v, want 0", got)
	}

	if got := FlushDenormals(0.5); got != 0.5 {
		t.Fatalf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		lin := DBToLinear(db)
		back := LinearToDB(lin)

		if math.Abs(back-db) > 1e-12 {
			t.Fatalf("round trip %v dB -> %v", db, back)
		}
	}
}

func TestLinearToDBEdgeCases(t *testing.T) {
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 44100 {
		t.Fatalf("default sample rate = %v, want 44100", cfg.SampleRate)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(48000))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}

	// Invalid values keep the default.
	cfg = ApplyProcessorOptions(WithSampleRate(-1))
	if cfg.SampleRate != 44100 {
		t.Fatalf("negative sample rate accepted: %v", cfg.SampleRate)
	}
}
