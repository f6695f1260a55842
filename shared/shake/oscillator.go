// Package shake implements the screen shake oscillator: additive impulses,
// exponential strength decay, a duration envelope and band-limited noise.
package shake

import (
	"math"
	"math/rand"

	"github.com/automoto/impact/shared/gamemath"
)

// settleEpsilon is the strength below which the shake is zeroed outright.
const settleEpsilon = 1e-4

// Settings configures an Oscillator.
type Settings struct {
	Decay        float64 // strength *= exp(-Decay*dt)
	BaseDuration float64 // envelope = timeRemaining / BaseDuration
	Frequency    float64 // noise target resamples per second
	Smoothing    float64 // per-60Hz-frame lerp toward the target
	MaxStrength  float64 // 0 disables the cap
	Seed         int64
}

// Oscillator accumulates impulses and produces a camera offset. It always
// runs on raw delta time so it keeps moving during a hit-stop.
type Oscillator struct {
	settings Settings
	rng      *rand.Rand

	strength      float64
	timeRemaining float64
	current       gamemath.Vec3
	noise         gamemath.Vec3
	resampleTimer float64
}

func New(s Settings) *Oscillator {
	o := &Oscillator{rng: rand.New(rand.NewSource(s.Seed))}
	o.Configure(s)
	return o
}

// Configure replaces the settings. The noise source is kept so a reload does
// not restart the sequence.
func (o *Oscillator) Configure(s Settings) {
	o.settings = s
}

// AddImpulse adds strength and duration on top of whatever is running.
func (o *Oscillator) AddImpulse(strength, duration float64) {
	if !gamemath.Finite(strength) || strength <= 0 {
		return
	}
	o.strength += strength
	if max := o.settings.MaxStrength; max > 0 && o.strength > max {
		o.strength = max
	}
	o.timeRemaining += gamemath.SanitizeDelta(duration)
}

// Tick decays the shake by rawDt and returns the smoothed offset.
func (o *Oscillator) Tick(rawDt float64) gamemath.Vec3 {
	dt := gamemath.SanitizeDelta(rawDt)
	if o.Idle() {
		return gamemath.Vec3{}
	}

	o.strength *= math.Exp(-math.Max(o.settings.Decay, 0) * dt)
	o.timeRemaining = math.Max(o.timeRemaining-dt, 0)
	if o.timeRemaining <= gamemath.Epsilon || o.strength < settleEpsilon {
		o.Reset()
		return gamemath.Vec3{}
	}

	envelope := gamemath.Clamp01(gamemath.SafeDiv(o.timeRemaining, o.settings.BaseDuration))
	amplitude := o.strength * envelope

	o.resampleTimer -= dt
	if o.resampleTimer <= 0 {
		o.noise = gamemath.Vec3{
			X: o.rng.Float64()*2 - 1,
			Y: o.rng.Float64()*2 - 1,
			Z: o.rng.Float64()*2 - 1,
		}
		o.resampleTimer += gamemath.SafeDiv(1, o.settings.Frequency)
		if o.resampleTimer <= 0 {
			o.resampleTimer = gamemath.SafeDiv(1, o.settings.Frequency)
		}
	}

	target := o.noise.Scale(amplitude)
	o.current = o.current.Lerp(target, gamemath.SmoothingFactor(o.settings.Smoothing, dt))
	return o.current
}

// Idle reports whether there is nothing left to decay.
func (o *Oscillator) Idle() bool {
	return o.strength == 0 && o.timeRemaining == 0 && o.current.IsZero()
}

func (o *Oscillator) Offset() gamemath.Vec3 { return o.current }

func (o *Oscillator) Strength() float64 { return o.strength }

func (o *Oscillator) TimeRemaining() float64 { return o.timeRemaining }

// Reset zeroes strength, time and offsets.
func (o *Oscillator) Reset() {
	o.strength = 0
	o.timeRemaining = 0
	o.current = gamemath.Vec3{}
	o.noise = gamemath.Vec3{}
	o.resampleTimer = 0
}
