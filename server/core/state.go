package core

import (
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/systems"
	"github.com/yohamta/donburi"
)

// Snapshot is the read-only view served on /state.
type Snapshot struct {
	Frame      uint64            `json:"frame"`
	Round      int               `json:"round"`
	SimTime    float64           `json:"simTime"`
	TimeScale  float64           `json:"timeScale"`
	Hitstop    string            `json:"hitstop"`
	Combo      int               `json:"combo"`
	Score      float64           `json:"score"`
	Airborne   int               `json:"airborne"`
	Combatants []CombatantStatus `json:"combatants"`
}

type CombatantStatus struct {
	ID       int     `json:"id"`
	Kind     string  `json:"kind"`
	Class    string  `json:"class"`
	Team     int     `json:"team"`
	Health   int     `json:"health"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Ragdoll  bool    `json:"ragdoll"`
	Alive    bool    `json:"alive"`
	TargetID int     `json:"targetId,omitempty"`
}

func capture(w donburi.World, round int) Snapshot {
	d := systems.GetOrCreateDirector(w)
	combo := systems.ComboState(w)
	snap := Snapshot{
		Frame:     d.Frame,
		Round:     round,
		SimTime:   d.SimTime,
		TimeScale: systems.EffectiveTimeScale(w),
		Hitstop:   d.Time.Hitstop().Phase().String(),
		Combo:     combo.Multiplier,
		Score:     combo.TotalScore,
	}

	for e := range components.Combatant.Iter(w) {
		cb := components.Combatant.Get(e)
		pos := components.Transform.Get(e).Position
		hp, _ := systems.Health(e)
		ragdoll := components.Ragdoll.Get(e).Active
		status := CombatantStatus{
			ID:      cb.ID,
			Kind:    cb.Kind.String(),
			Class:   cb.Class.String(),
			Team:    cb.Team,
			Health:  hp,
			X:       pos.X,
			Y:       pos.Y,
			Z:       pos.Z,
			Ragdoll: ragdoll,
			Alive:   systems.Alive(e),
		}
		if target, _, ok := systems.CurrentTarget(e); ok {
			status.TargetID = components.Combatant.Get(target).ID
		}
		if ragdoll && status.Alive {
			snap.Airborne++
		}
		snap.Combatants = append(snap.Combatants, status)
	}
	return snap
}
