package gamemath

import "math"

// Epsilon floors every division by a duration or length so a zero
// configuration value cannot produce NaN or Inf.
const Epsilon = 1e-6

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Lerp interpolates from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SafeDiv divides num by den with den floored at Epsilon.
func SafeDiv(num, den float64) float64 {
	if den < Epsilon {
		den = Epsilon
	}
	return num / den
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SanitizeDelta turns a negative or non-finite delta into 0.
func SanitizeDelta(dt float64) float64 {
	if !Finite(dt) || dt < 0 {
		return 0
	}
	return dt
}

// SmoothingFactor converts a per-60Hz-frame lerp factor k into the factor for
// a step of dt seconds: 1 - (1-k)^(dt*60).
func SmoothingFactor(k, dt float64) float64 {
	k = Clamp01(k)
	return 1 - math.Pow(1-k, dt*60)
}
