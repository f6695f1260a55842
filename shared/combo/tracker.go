// Package combo tracks the chaos multiplier: the number of combatants airborne
// right now, held for a grace period after the last one lands, and the score
// it accrues.
package combo

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Settings configures a Tracker.
type Settings struct {
	DecayTime             float64
	PointsPerNpcPerSecond float64
	BumpScale             float64 // peak of the cosmetic pulse
	BumpDuration          float64
}

// State is the authoritative combo state.
type State struct {
	Multiplier int
	DecayTimer float64
	TotalScore float64
}

// Result is returned by Tick. Bumped is cosmetic only.
type Result struct {
	State
	Changed bool
	Bumped  bool
}

type Tracker struct {
	settings Settings
	state    State

	bump      *gween.Tween
	bumpScale float64
}

func NewTracker(s Settings) *Tracker {
	t := &Tracker{bumpScale: 1}
	t.Configure(s)
	return t
}

func (t *Tracker) Configure(s Settings) {
	s.DecayTime = gamemath.SanitizeDelta(s.DecayTime)
	t.settings = s
}

// Tick folds this frame's airborne count into the combo.
func (t *Tracker) Tick(airborne int, dt float64) Result {
	dt = gamemath.SanitizeDelta(dt)
	prev := t.state.Multiplier

	switch {
	case airborne > 0:
		t.state.Multiplier = airborne
		t.state.DecayTimer = t.settings.DecayTime
		t.state.TotalScore += float64(airborne) * t.settings.PointsPerNpcPerSecond * dt
	case t.state.Multiplier > 0:
		t.state.DecayTimer -= dt
		if t.state.DecayTimer <= gamemath.Epsilon {
			t.state.DecayTimer = 0
			t.state.Multiplier = 0
		}
	default:
		t.state.DecayTimer = 0
	}

	res := Result{
		State:   t.state,
		Changed: t.state.Multiplier != prev,
		Bumped:  t.state.Multiplier > prev,
	}
	if res.Bumped && t.settings.BumpDuration > gamemath.Epsilon {
		t.bump = gween.New(float32(t.settings.BumpScale), 1, float32(t.settings.BumpDuration), ease.OutQuad)
		t.bumpScale = t.settings.BumpScale
	}
	return res
}

// AnimateBump advances the cosmetic pulse. It runs on raw time so the pulse
// still plays during a hit-stop.
func (t *Tracker) AnimateBump(rawDt float64) {
	if t.bump == nil {
		return
	}
	v, done := t.bump.Update(float32(gamemath.SanitizeDelta(rawDt)))
	t.bumpScale = float64(v)
	if done {
		t.bump = nil
		t.bumpScale = 1
	}
}

// BumpScale is the current pulse scale, 1 when idle.
func (t *Tracker) BumpScale() float64 { return t.bumpScale }

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Reset() {
	t.state = State{}
	t.bump = nil
	t.bumpScale = 1
}
