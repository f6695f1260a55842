package factory

import (
	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/combo"
	"github.com/automoto/impact/shared/shake"
	"github.com/automoto/impact/shared/timescale"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewDirector builds fresh feedback state for a tuning.
func NewDirector(t config.Tuning) components.DirectorData {
	return components.DirectorData{
		Tuning: t,
		Time:   timescale.NewStack(t.TimeSettings()),
		Shake:  shake.New(t.ShakeSettings()),
		Combo:  combo.NewTracker(t.ComboSettings()),
	}
}

// CreateDirector spawns the feedback singleton, replacing any existing one.
func CreateDirector(ecs *ecs.ECS, t config.Tuning) *donburi.Entry {
	if old, ok := components.Director.First(ecs.World); ok {
		old.Remove()
	}
	director := archetypes.Director.Spawn(ecs)
	components.Director.SetValue(director, NewDirector(t))
	return director
}

func directorTuning(w donburi.World) config.Tuning {
	if entry, ok := components.Director.First(w); ok {
		return components.Director.Get(entry).Tuning
	}
	return config.Default()
}
