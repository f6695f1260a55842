package config

import (
	"github.com/automoto/impact/shared/combo"
	"github.com/automoto/impact/shared/shake"
	"github.com/automoto/impact/shared/timescale"
)

// TimeSettings builds the time-dilation stack settings, resolving the
// frame-counted hit-stop overrides.
func (t Tuning) TimeSettings() timescale.Settings {
	base, recovery := t.HitstopDurations()
	return timescale.Settings{
		Hitstop: timescale.HitstopSettings{
			BaseDuration: base,
			RecoveryTime: recovery,
			FreezeScale:  t.Hitstop.FreezeScale,
			Curve:        t.Hitstop.RecoveryCurve,
		},
		RecoverySpeed: t.SlowMotion.RecoverySpeed,
	}
}

func (t Tuning) ShakeSettings() shake.Settings {
	return shake.Settings{
		Decay:        t.Shake.Decay,
		BaseDuration: t.Shake.BaseDuration,
		Frequency:    t.Shake.Frequency,
		Smoothing:    t.Shake.Smoothing,
		MaxStrength:  t.Shake.MaxStrength,
		Seed:         t.Shake.Seed,
	}
}

func (t Tuning) ComboSettings() combo.Settings {
	return combo.Settings{
		DecayTime:             t.Combo.DecayTime,
		PointsPerNpcPerSecond: t.Combo.PointsPerNpcPerSecond,
		BumpScale:             t.Combo.BumpScale,
		BumpDuration:          t.Combo.BumpDuration,
	}
}
