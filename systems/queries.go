package systems

import (
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/combo"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EffectiveTimeScale is this frame's collapsed time scale in [0, 1].
func EffectiveTimeScale(w donburi.World) float64 {
	return GetOrCreateDirector(w).Time.EffectiveScale()
}

// RawDelta is this frame's clamped, unscaled delta.
func RawDelta(w donburi.World) float64 {
	return rawDelta(w)
}

// EffectiveDelta is RawDelta scaled by EffectiveTimeScale.
func EffectiveDelta(w donburi.World) float64 {
	return simDelta(w)
}

func ShakeOffset(w donburi.World) gamemath.Vec3 {
	return GetOrCreateDirector(w).Shake.Offset()
}

func ComboState(w donburi.World) combo.State {
	return GetOrCreateDirector(w).Combo.State()
}

// ComboBumpScale is the cosmetic pulse scale for the combo readout.
func ComboBumpScale(w donburi.World) float64 {
	return GetOrCreateDirector(w).Combo.BumpScale()
}

func Health(e *donburi.Entry) (current, max int) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return 0, 0
	}
	hp := components.Health.Get(e)
	return hp.Current, hp.Max
}

// CurrentTarget returns the attacker's locked target and its XZ distance,
// if the lock still points at something targetable.
func CurrentTarget(attacker *donburi.Entry) (*donburi.Entry, float64, bool) {
	if !attacker.Valid() || !attacker.HasComponent(components.TargetLock) {
		return nil, 0, false
	}
	target := components.TargetLock.Get(attacker).Target
	if !Targetable(attacker, target) {
		return nil, 0, false
	}
	return target, distanceXZ(components.Transform.Get(attacker).Position, target), true
}

// ConsumeDeath hands the most recent death event to a replay collaborator
// and forgets it.
func ConsumeDeath(w donburi.World) (components.HitEvent, bool) {
	d := GetOrCreateDirector(w)
	if d.LastDeath == nil {
		return components.HitEvent{}, false
	}
	evt := *d.LastDeath
	d.LastDeath = nil
	return evt, true
}
