package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireHermitian fails t if spectrum[n-k] != conj(spectrum[k]) within eps
// for k = 1..n-1, or if the k=0 bin (and the Nyquist bin for even n) has a
// non-negligible imaginary part.
func RequireHermitian(t *testing.T, spectrum []complex128, eps float64) {
	t.Helper()
	n := len(spectrum)
	if n == 0 {
		return
	}

	if math.Abs(imag(spectrum[0])) > eps {
		t.Fatalf("DC bin imaginary part %v exceeds eps %v", imag(spectrum[0]), eps)
	}
	if n%2 == 0 {
		if im := imag(spectrum[n/2]); math.Abs(im) > eps {
			t.Fatalf("Nyquist bin imaginary part %v exceeds eps %v", im, eps)
		}
	}

	for k := 1; k < n; k++ {
		diff := cmplx.Abs(spectrum[n-k] - cmplx.Conj(spectrum[k]))
		if diff > eps {
			t.Fatalf("bin %d: |spectrum[%d] - conj(spectrum[%d])| = %v > eps %v", k, n-k, k, diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
