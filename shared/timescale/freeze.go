package timescale

import (
	"math"

	"github.com/automoto/impact/shared/gamemath"
)

// GlobalFreeze is the continuous slow-motion source. It relaxes its current
// factor toward the requested target every tick and snaps back to 1 when the
// request's duration has elapsed.
type GlobalFreeze struct {
	recoverySpeed float64

	current   float64
	target    float64
	remaining float64
}

func NewGlobalFreeze(recoverySpeed float64) *GlobalFreeze {
	g := &GlobalFreeze{current: 1, target: 1}
	g.Configure(recoverySpeed)
	return g
}

func (g *GlobalFreeze) Configure(recoverySpeed float64) {
	g.recoverySpeed = gamemath.Clamp01(recoverySpeed)
}

// Request slows time toward factor for duration seconds. While a request is
// running the stronger (smaller) factor wins and the duration extends to the
// longer of the two.
func (g *GlobalFreeze) Request(factor, duration float64) {
	if !gamemath.Finite(factor) || !gamemath.Finite(duration) || duration <= 0 {
		return
	}
	factor = gamemath.Clamp01(factor)
	if g.Active() {
		g.target = math.Min(g.target, factor)
		g.remaining = math.Max(g.remaining, duration)
		return
	}
	g.target = factor
	g.remaining = duration
}

// Tick relaxes toward the target and returns the factor for this frame.
func (g *GlobalFreeze) Tick(rawDt float64) float64 {
	if !g.Active() {
		return g.current
	}

	g.current = gamemath.Lerp(g.current, g.target, g.recoverySpeed)
	if math.Abs(g.current-g.target) < gamemath.Epsilon {
		g.current = g.target
	}
	g.current = gamemath.Clamp01(g.current)
	factor := g.current

	g.remaining -= gamemath.SanitizeDelta(rawDt)
	if g.remaining <= 0 {
		g.Reset()
	}
	return factor
}

func (g *GlobalFreeze) Active() bool { return g.remaining > 0 }

func (g *GlobalFreeze) Factor() float64 { return g.current }

func (g *GlobalFreeze) Target() float64 { return g.target }

func (g *GlobalFreeze) Remaining() float64 { return g.remaining }

func (g *GlobalFreeze) Reset() {
	g.current = 1
	g.target = 1
	g.remaining = 0
}
