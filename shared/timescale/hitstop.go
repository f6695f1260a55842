// Package timescale collapses the independent time-dilation sources (the
// hit-stop automaton and the continuous global slow-motion) into one
// effective time scale per frame.
package timescale

import (
	"math"

	"github.com/automoto/impact/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// Phase is the hit-stop automaton state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFreeze
	PhaseRecovering
)

func (p Phase) String() string {
	switch p {
	case PhaseFreeze:
		return "freeze"
	case PhaseRecovering:
		return "recovering"
	default:
		return "idle"
	}
}

// HitstopSettings parameterises the automaton. The frame-counted variant is
// expressed by converting frame counts to seconds before building this.
type HitstopSettings struct {
	BaseDuration float64 // freeze length at intensity 1
	RecoveryTime float64
	FreezeScale  float64 // scale held during FREEZE
	Curve        string
}

// Hitstop is the IDLE -> FREEZE -> RECOVERING -> IDLE automaton. Repeated
// requests during a freeze extend it to the longest request; they never add.
type Hitstop struct {
	settings HitstopSettings
	curve    ease.TweenFunc

	phase             Phase
	freezeRemaining   float64
	recoveryRemaining float64
}

func NewHitstop(s HitstopSettings) *Hitstop {
	h := &Hitstop{}
	h.Configure(s)
	return h
}

// Configure replaces the settings without disturbing a running freeze.
func (h *Hitstop) Configure(s HitstopSettings) {
	s.FreezeScale = gamemath.Clamp01(s.FreezeScale)
	s.BaseDuration = gamemath.SanitizeDelta(s.BaseDuration)
	s.RecoveryTime = gamemath.SanitizeDelta(s.RecoveryTime)
	h.settings = s
	h.curve = Curve(s.Curve)
}

// Request starts or extends a freeze. intensity is clamped to [0,1] and
// scales the freeze between half and full BaseDuration.
func (h *Hitstop) Request(intensity float64) {
	intensity = gamemath.Clamp01(intensity)
	d := h.settings.BaseDuration * (0.5 + 0.5*intensity)
	if !gamemath.Finite(d) || d <= 0 {
		return
	}

	if h.phase == PhaseFreeze && h.freezeRemaining > d {
		return
	}
	h.phase = PhaseFreeze
	h.freezeRemaining = d
	h.recoveryRemaining = 0
}

// Scale returns the automaton's current contribution in [0,1].
func (h *Hitstop) Scale() float64 {
	switch h.phase {
	case PhaseFreeze:
		return h.settings.FreezeScale
	case PhaseRecovering:
		t := 1 - gamemath.SafeDiv(h.recoveryRemaining, h.settings.RecoveryTime)
		t = gamemath.Clamp01(t)
		fs := h.settings.FreezeScale
		return gamemath.Clamp01(fs + (1-fs)*evalCurve(h.curve, t))
	default:
		return 1
	}
}

// Tick samples the scale for this frame, then advances by the raw delta.
// Sampling first guarantees a freeze requested earlier in the frame applies
// to the frame that produced it.
func (h *Hitstop) Tick(rawDt float64) float64 {
	scale := h.Scale()
	h.advance(gamemath.SanitizeDelta(rawDt))
	return scale
}

func (h *Hitstop) advance(dt float64) {
	switch h.phase {
	case PhaseFreeze:
		h.freezeRemaining -= dt
		if h.freezeRemaining > gamemath.Epsilon {
			return
		}
		overflow := math.Max(-h.freezeRemaining, 0)
		h.freezeRemaining = 0
		if h.settings.RecoveryTime <= gamemath.Epsilon {
			h.phase = PhaseIdle
			return
		}
		h.phase = PhaseRecovering
		h.recoveryRemaining = h.settings.RecoveryTime - overflow
		if h.recoveryRemaining <= gamemath.Epsilon {
			h.phase = PhaseIdle
			h.recoveryRemaining = 0
		}
	case PhaseRecovering:
		h.recoveryRemaining -= dt
		if h.recoveryRemaining <= gamemath.Epsilon {
			h.phase = PhaseIdle
			h.recoveryRemaining = 0
		}
	}
}

func (h *Hitstop) Phase() Phase { return h.phase }

func (h *Hitstop) FreezeRemaining() float64 { return h.freezeRemaining }

func (h *Hitstop) RecoveryRemaining() float64 { return h.recoveryRemaining }

func (h *Hitstop) Reset() {
	h.phase = PhaseIdle
	h.freezeRemaining = 0
	h.recoveryRemaining = 0
}
