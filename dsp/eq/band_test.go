package eq

import (
	"math"
	"testing"
)

func TestGainFactorCurve(t *testing.T) {
	cases := map[int]float64{
		0:  0.0,
		1:  0.2,
		2:  0.4,
		5:  1.0,
		8:  1.6,
		10: 2.0,
	}
	for gain, want := range cases {
		if got := GainFactor(gain); math.Abs(got-want) > 1e-15 {
			t.Fatalf("GainFactor(%d) = %v, want %v", gain, got, want)
		}
	}
}

func TestGainFactorClamps(t *testing.T) {
	if got := GainFactor(-3); got != GainFactor(GainMin) {
		t.Fatalf("GainFactor(-3) = %v, want clamp to %v", got, GainFactor(GainMin))
	}
	if got := GainFactor(99); got != GainFactor(GainMax) {
		t.Fatalf("GainFactor(99) = %v, want clamp to %v", got, GainFactor(GainMax))
	}
}

func TestBandDegenerate(t *testing.T) {
	if !(Band{MinHz: 100, MaxHz: 100}).Degenerate() {
		t.Fatal("equal bounds should be degenerate")
	}
	if !(Band{MinHz: 200, MaxHz: 100}).Degenerate() {
		t.Fatal("inverted bounds should be degenerate")
	}
	if (Band{MinHz: 100, MaxHz: 200}).Degenerate() {
		t.Fatal("valid band reported degenerate")
	}
}

func TestBandContainsHalfOpen(t *testing.T) {
	b := Band{MinHz: 100, MaxHz: 200}

	if !b.Contains(100) {
		t.Fatal("lower bound should be inclusive")
	}
	if b.Contains(200) {
		t.Fatal("upper bound should be exclusive")
	}
	if b.Contains(99.999) || b.Contains(200.001) {
		t.Fatal("out-of-range frequency reported contained")
	}
}

func TestUniformBandsPartition(t *testing.T) {
	bands := UniformBands(10, 22050)
	if len(bands) != 10 {
		t.Fatalf("len = %d, want 10", len(bands))
	}

	if bands[0].MinHz != 0 {
		t.Fatalf("first band starts at %v, want 0", bands[0].MinHz)
	}
	if math.Abs(bands[9].MaxHz-22050) > 1e-9 {
		t.Fatalf("last band ends at %v, want 22050", bands[9].MaxHz)
	}

	for i := 1; i < len(bands); i++ {
		if math.Abs(bands[i].MinHz-bands[i-1].MaxHz) > 1e-9 {
			t.Fatalf("gap between band %d and %d: %v != %v", i-1, i, bands[i-1].MaxHz, bands[i].MinHz)
		}
	}

	for i, b := range bands {
		if b.Gain != GainNeutral {
			t.Fatalf("band %d gain = %d, want neutral", i, b.Gain)
		}
	}
}

func TestUniformBandsInvalidArgs(t *testing.T) {
	if UniformBands(0, 22050) != nil {
		t.Fatal("count 0 should yield nil")
	}
	if UniformBands(10, 0) != nil {
		t.Fatal("nyquist 0 should yield nil")
	}
}

func TestFixedBandTables(t *testing.T) {
	musical := MusicalBands()
	if len(musical) != 6 {
		t.Fatalf("musical bands = %d, want 6", len(musical))
	}
	if musical[0].Label != "Drums" || musical[0].MaxHz != 400 {
		t.Fatalf("unexpected first musical band: %+v", musical[0])
	}

	animal := AnimalSongBands()
	if len(animal) != 6 {
		t.Fatalf("animal bands = %d, want 6", len(animal))
	}
	if animal[4].Label != "Cardinal" || animal[4].MinHz != 2800 {
		t.Fatalf("unexpected cardinal band: %+v", animal[4])
	}

	ecg := ECGBands()
	if len(ecg) != 4 {
		t.Fatalf("ecg bands = %d, want 4", len(ecg))
	}
	if ecg[1].Label != "AFib" || ecg[1].MinHz != 200 || ecg[1].MaxHz != 450 {
		t.Fatalf("unexpected afib band: %+v", ecg[1])
	}
}

func TestBandsByMode(t *testing.T) {
	if got := Bands(ModeUniform, 22050); len(got) != DefaultUniformBandCount {
		t.Fatalf("uniform bands = %d, want %d", len(got), DefaultUniformBandCount)
	}
	if got := Bands(ModeMusical, 22050); len(got) != 6 {
		t.Fatalf("musical bands = %d", len(got))
	}
	if got := Bands(ModeWiener, 22050); got != nil {
		t.Fatal("wiener mode should present no bands")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeUniform, ModeMusical, ModeAnimalSong, ModeECG, ModeWiener} {
		parsed, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", m.String(), err)
		}
		if parsed != m {
			t.Fatalf("ParseMode(%q) = %v, want %v", m.String(), parsed, m)
		}
	}

	if _, err := ParseMode("karaoke"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
