package systems

import (
	"sort"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCommands turns each combatant's intent into target switches and
// attacks, in combatant ID order. One-shot commands are cleared afterwards;
// Move persists until its writer changes it.
func UpdateCommands(ecs *ecs.ECS) {
	for _, e := range combatantsByID(ecs.World) {
		intent := components.Intent.Get(e)
		if intent.Switch != 0 {
			SwitchTarget(ecs, e, intent.Switch)
		}
		if intent.Melee {
			ResolveMeleeAttack(ecs, e)
		}
		if intent.Ranged {
			ResolveRangedAttack(ecs, e, RangedSpawn(e))
		}
		intent.Melee, intent.Ranged, intent.Switch = false, false, 0
	}
}

// RangedSpawn is where the combatant's projectiles leave from: just outside
// its footprint along its facing.
func RangedSpawn(e *donburi.Entry) gamemath.Vec3 {
	pos := components.Transform.Get(e).Position
	facing := gamemath.FacingVector(components.Combatant.Get(e).Facing)
	return pos.Add(facing.Scale(tuning(e.World).Combatant.Radius * 1.5))
}

func combatantsByID(w donburi.World) []*donburi.Entry {
	var all []*donburi.Entry
	for e := range components.Combatant.Iter(w) {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool {
		return components.Combatant.Get(all[i]).ID < components.Combatant.Get(all[j]).ID
	})
	return all
}
