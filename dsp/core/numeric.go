package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max]. Swapped bounds
// are tolerated.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	switch {
	case value < min:
		return min
	case value > max:
		return max
	default:
		return value
	}
}

// NearlyEqual reports whether a and b are equal within eps, comparing
// absolutely near zero and relatively otherwise. Non-positive eps falls
// back to a small default.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return false
	}

	return diff/largest <= eps
}

// denormalFloor marks the magnitude below which values are treated as
// numerically silent.
const denormalFloor = 1e-30

// FlushDenormals rounds near-denormal values to exact zero so decaying
// tails do not linger at magnitudes that slow the FPU down.
func FlushDenormals(x float64) float64 {
	if math.Abs(x) < denormalFloor {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Zero maps to -Inf, negative input to NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Zero maps to -Inf, negative input to NaN.
func LinearPowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	default:
		return 10 * math.Log10(power)
	}
}
