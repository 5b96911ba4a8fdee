package window

import (
	"math"
	"testing"
)

func TestGenerateRectangular(t *testing.T) {
	w := Generate(TypeRectangular, 8)
	if len(w) != 8 {
		t.Fatalf("len = %d, want 8", len(w))
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestGenerateHannSymmetric(t *testing.T) {
	w := Generate(TypeHann, 9)

	// Symmetric form: zero at both ends, peak of 1 in the middle.
	if math.Abs(w[0]) > 1e-15 || math.Abs(w[8]) > 1e-15 {
		t.Fatalf("endpoints not zero: %v, %v", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("midpoint = %v, want 1", w[4])
	}
	for i := range w {
		if math.Abs(w[i]-w[len(w)-1-i]) > 1e-15 {
			t.Fatalf("asymmetry at index %d", i)
		}
	}
}

func TestGenerateHannPeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())

	// Periodic form: w[i] = 0.5 - 0.5*cos(2*pi*i/8).
	for i := range w {
		want := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/8)
		if math.Abs(w[i]-want) > 1e-15 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want)
		}
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("length 0 should be nil, got %v", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 {
		t.Fatalf("length 1 should yield one sample, got %v", w)
	}
}

func TestCosineSumsStartNearZeroOrFloor(t *testing.T) {
	// All non-rectangular windows taper at the edges.
	for _, typ := range []Type{TypeHann, TypeBlackman, TypeBlackmanHarris4Term} {
		w := Generate(typ, 64)
		if math.Abs(w[0]) > 0.01 {
			t.Fatalf("%s edge value = %v", typ.Name(), w[0])
		}
	}
}

func TestCoherentGain(t *testing.T) {
	g, err := CoherentGain(Generate(TypeRectangular, 16))
	if err != nil {
		t.Fatalf("CoherentGain error: %v", err)
	}
	if math.Abs(g-1) > 1e-15 {
		t.Fatalf("rectangular coherent gain = %v, want 1", g)
	}

	g, err = CoherentGain(Generate(TypeHann, 4096, WithPeriodic()))
	if err != nil {
		t.Fatalf("CoherentGain error: %v", err)
	}
	if math.Abs(g-0.5) > 1e-3 {
		t.Fatalf("hann coherent gain = %v, want ~0.5", g)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{2, 2, 2, 2}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients error: %v", err)
	}
	for i := range out {
		if out[i] != samples[i]*2 {
			t.Fatalf("out[%d] = %v", i, out[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range []Type{
		TypeRectangular, TypeHann, TypeHamming,
		TypeBlackman, TypeBlackmanHarris4Term, TypeFlatTop,
	} {
		parsed, err := ParseType(typ.Name())
		if err != nil {
			t.Fatalf("ParseType(%q) error: %v", typ.Name(), err)
		}
		if parsed != typ {
			t.Fatalf("ParseType(%q) = %v, want %v", typ.Name(), parsed, typ)
		}
	}
}

func TestParseTypeUnknown(t *testing.T) {
	if _, err := ParseType("bartlett"); err == nil {
		t.Fatal("expected error for unknown window name")
	}
}

func TestParseTypeDefault(t *testing.T) {
	typ, err := ParseType("")
	if err != nil {
		t.Fatalf("ParseType(\"\") error: %v", err)
	}
	if typ != TypeHann {
		t.Fatalf("empty name = %v, want TypeHann", typ)
	}
}
