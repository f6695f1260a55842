package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/automoto/impact/shared/timescale"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Load reads a YAML tuning file and applies it on top of Default.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected so a typo
// does not silently fall back to a default.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports values that would break the frame loop. Zero durations are
// allowed (they disable the effect); negative or non-finite ones are not.
func (t Tuning) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidTuning, name, v))
		}
	}

	check("frame.max_step", t.Frame.MaxStep)
	check("frame.assumed_fps", t.Frame.AssumedFPS)
	check("combatant.radius", t.Combatant.Radius)
	check("melee.knockback_force", t.Melee.KnockbackForce)
	check("melee.range", t.Melee.Range)
	check("melee.cooldown", t.Melee.Cooldown)
	check("ranged.cooldown", t.Ranged.Cooldown)
	check("ranged.speed", t.Ranged.Speed)
	check("ranged.lifetime", t.Ranged.Lifetime)
	check("ranged.hit_radius", t.Ranged.HitRadius)
	check("ranged.impulse_ratio", t.Ranged.ImpulseRatio)
	check("targeting.acquisition_range", t.Targeting.AcquisitionRange)
	check("targeting.lock_range", t.Targeting.LockRange)
	check("targeting.cone_angle_deg", t.Targeting.ConeAngle)
	check("ragdoll.duration", t.Ragdoll.Duration)
	check("ragdoll.friction_per_second", t.Ragdoll.FrictionPerSecond)
	check("ragdoll.exit_velocity", t.Ragdoll.ExitVelocity)
	check("hitstop.base_duration", t.Hitstop.BaseDuration)
	check("hitstop.recovery_time", t.Hitstop.RecoveryTime)
	check("slow_motion.recovery_speed", t.SlowMotion.RecoverySpeed)
	check("death.slow_duration", t.Death.SlowDuration)
	check("shake.decay", t.Shake.Decay)
	check("shake.base_duration", t.Shake.BaseDuration)
	check("shake.frequency", t.Shake.Frequency)
	check("combo.decay_time", t.Combo.DecayTime)

	if t.Combatant.StandardHealth <= 0 || t.Combatant.HeavyHealth <= 0 ||
		t.Combatant.PlayerHealth <= 0 || t.Combatant.BossHealth <= 0 {
		errs = append(errs, fmt.Errorf("%w: combatant health must be positive", ErrInvalidTuning))
	}
	if t.Hitstop.BaseFrames < 0 || t.Hitstop.RecoveryFrames < 0 {
		errs = append(errs, fmt.Errorf("%w: hitstop frame counts must not be negative", ErrInvalidTuning))
	}
	if t.Targeting.ConeAngle > 360 {
		errs = append(errs, fmt.Errorf("%w: targeting.cone_angle_deg = %v exceeds 360", ErrInvalidTuning, t.Targeting.ConeAngle))
	}
	if t.Hitstop.RecoveryCurve != "" && !timescale.KnownCurve(t.Hitstop.RecoveryCurve) {
		errs = append(errs, fmt.Errorf("%w: hitstop.recovery_curve %q is not a known curve", ErrInvalidTuning, t.Hitstop.RecoveryCurve))
	}
	if t.SlowMotion.RecoverySpeed > 1 {
		errs = append(errs, fmt.Errorf("%w: slow_motion.recovery_speed = %v exceeds 1", ErrInvalidTuning, t.SlowMotion.RecoverySpeed))
	}
	return errors.Join(errs...)
}
