package timescale

import "github.com/tanema/gween/ease"

var curves = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in_quad":     ease.InQuad,
	"out_quad":    ease.OutQuad,
	"in_out_quad": ease.InOutQuad,
	"in_cubic":    ease.InCubic,
	"out_cubic":   ease.OutCubic,
	"in_sine":     ease.InSine,
	"out_sine":    ease.OutSine,
	"in_expo":     ease.InExpo,
}

// Curve looks up a recovery curve by name. Unknown or empty names fall back
// to in_quad, the t² snap-back.
func Curve(name string) ease.TweenFunc {
	if fn, ok := curves[name]; ok {
		return fn
	}
	return ease.InQuad
}

// KnownCurve reports whether name is a registered recovery curve.
func KnownCurve(name string) bool {
	_, ok := curves[name]
	return ok
}

// evalCurve maps progress t in [0,1] through fn onto [0,1].
func evalCurve(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}
