package timescale

import "github.com/automoto/impact/shared/gamemath"

// Settings configures every source on the stack.
type Settings struct {
	Hitstop       HitstopSettings
	RecoverySpeed float64 // GlobalFreeze lerp factor per tick
}

// Stack owns the process-wide time-dilation sources and keeps both the raw
// and the effective delta for the current frame. Camera, listener and input
// consumers read RawDelta; simulation reads EffectiveDelta.
type Stack struct {
	hitstop *Hitstop
	freeze  *GlobalFreeze

	rawDelta float64
	scale    float64
}

func NewStack(s Settings) *Stack {
	return &Stack{
		hitstop: NewHitstop(s.Hitstop),
		freeze:  NewGlobalFreeze(s.RecoverySpeed),
		scale:   1,
	}
}

func (s *Stack) Configure(settings Settings) {
	s.hitstop.Configure(settings.Hitstop)
	s.freeze.Configure(settings.RecoverySpeed)
}

// RequestHitstop forwards to the hit-stop automaton.
func (s *Stack) RequestHitstop(intensity float64) {
	s.hitstop.Request(intensity)
}

// RequestGlobalFreeze forwards to the continuous slow-motion source.
func (s *Stack) RequestGlobalFreeze(factor, duration float64) {
	s.freeze.Request(factor, duration)
}

// Tick advances every source by the raw delta exactly once and returns the
// effective time scale, hitstop * freeze clamped to [0,1].
func (s *Stack) Tick(rawDt float64) float64 {
	rawDt = gamemath.SanitizeDelta(rawDt)
	scale := s.hitstop.Tick(rawDt) * s.freeze.Tick(rawDt)
	if !gamemath.Finite(scale) {
		scale = 1
	}
	s.rawDelta = rawDt
	s.scale = gamemath.Clamp01(scale)
	return s.scale
}

func (s *Stack) EffectiveScale() float64 { return s.scale }

func (s *Stack) RawDelta() float64 { return s.rawDelta }

func (s *Stack) EffectiveDelta() float64 { return s.rawDelta * s.scale }

func (s *Stack) Hitstop() *Hitstop { return s.hitstop }

func (s *Stack) GlobalFreeze() *GlobalFreeze { return s.freeze }

func (s *Stack) Reset() {
	s.hitstop.Reset()
	s.freeze.Reset()
	s.rawDelta = 0
	s.scale = 1
}
