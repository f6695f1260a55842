package systems

import (
	"github.com/automoto/impact/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// handleDeath runs exactly once per combatant; the Death component is the
// guard.
func handleDeath(ecs *ecs.ECS, evt components.HitEvent) {
	e := evt.Defender
	if e.HasComponent(components.Death) {
		return
	}
	d := GetOrCreateDirector(ecs.World)
	donburi.Add(e, components.Death, &components.DeathData{
		Time:   d.Now,
		Killer: evt.Attacker,
	})

	d.Time.RequestGlobalFreeze(d.Tuning.Death.SlowFactor, d.Tuning.Death.SlowDuration)
	d.Shake.AddImpulse(d.Tuning.Death.ShakeStrength, d.Tuning.Death.ShakeDuration)

	retained := evt
	d.LastDeath = &retained
	DeathOccurred.Publish(ecs.World, evt)
}
