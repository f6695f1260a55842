package systems

import (
	"math"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards queues environment damage for combatants standing in a
// hazard when its interval elapses. The damage lands next frame through
// UpdateCombat.
func UpdateHazards(ecs *ecs.ECS) {
	dt := simDelta(ecs.World)
	if dt <= 0 {
		return
	}

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hazard.Get(e)
		h.Timer -= dt
		if h.Timer > 0 {
			return
		}
		h.Timer += math.Max(h.Interval, gamemath.Epsilon)

		center := gamemath.Vec3{X: h.X + h.W/2, Z: h.Z + h.D/2}
		reach := math.Hypot(h.W, h.D) / 2
		push := gamemath.FacingVector(h.Direction * math.Pi / 180)
		for _, c := range CandidatesNear(ecs.World, center, reach) {
			if !Alive(c) {
				continue
			}
			pos := components.Transform.Get(c).Position
			if !h.Contains(pos.X, pos.Z) {
				continue
			}
			QueueDamage(c, h.Damage, push, h.Force, nil)
		}
	})
}
