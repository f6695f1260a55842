package systems

import (
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/systems/factory"
	"github.com/yohamta/donburi"
)

// GetOrCreateDirector returns the singleton Director for this world, creating
// it with the default tuning if needed.
func GetOrCreateDirector(w donburi.World) *components.DirectorData {
	entry, ok := components.Director.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Director))
		components.Director.SetValue(entry, factory.NewDirector(config.Default()))
	}
	return components.Director.Get(entry)
}

// ApplyTuning swaps the whole tuning at a frame boundary. Running effects
// keep their remaining time; only their parameters change.
func ApplyTuning(w donburi.World, t config.Tuning) {
	d := GetOrCreateDirector(w)
	d.Tuning = t
	d.Time.Configure(t.TimeSettings())
	d.Shake.Configure(t.ShakeSettings())
	d.Combo.Configure(t.ComboSettings())
}

// ResetDirector clears every feedback source and the clocks.
func ResetDirector(w donburi.World) {
	d := GetOrCreateDirector(w)
	d.Time.Reset()
	d.Shake.Reset()
	d.Combo.Reset()
	d.RawDelta = 0
	d.Now = 0
	d.SimTime = 0
	d.Frame = 0
	d.LastDeath = nil
}

func tuning(w donburi.World) *config.Tuning {
	return &GetOrCreateDirector(w).Tuning
}

// simDelta is the effective delta for gameplay simulation this frame.
func simDelta(w donburi.World) float64 {
	return GetOrCreateDirector(w).Time.EffectiveDelta()
}

func rawDelta(w donburi.World) float64 {
	return GetOrCreateDirector(w).RawDelta
}
