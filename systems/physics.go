package systems

import (
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies commanded motion to combatants that are not
// ragdolled, and settles bodies that left a ragdoll in mid-air.
func UpdateMovement(ecs *ecs.ECS) {
	dt := simDelta(ecs.World)
	if dt <= 0 {
		return
	}
	t := tuning(ecs.World)

	for e := range components.Combatant.Iter(ecs.World) {
		if !Alive(e) || components.Ragdoll.Get(e).Active {
			continue
		}
		cb := components.Combatant.Get(e)
		tr := components.Transform.Get(e)
		physics := components.Physics.Get(e)
		intent := components.Intent.Get(e)

		move := intent.Move.Horizontal()
		if !move.IsZero() && cb.Active {
			dir := move.Normalize()
			physics.Velocity.X = dir.X * t.Combatant.MoveSpeed
			physics.Velocity.Z = dir.Z * t.Combatant.MoveSpeed
			cb.Facing = turnToward(cb.Facing, gamemath.FacingAngle(dir), t.Combatant.TurnSpeed*dt)
		} else {
			physics.Velocity.X, physics.Velocity.Z = 0, 0
			if lock := components.TargetLock.Get(e); lock.Target != nil && Targetable(e, lock.Target) {
				offset := components.Transform.Get(lock.Target).Position.Sub(tr.Position)
				if !offset.Horizontal().IsZero() {
					cb.Facing = turnToward(cb.Facing, gamemath.FacingAngle(offset), t.Combatant.TurnSpeed*dt)
				}
			}
		}

		if !physics.Grounded {
			physics.Velocity.Y -= t.Ragdoll.Gravity * dt
		}
		tr.Position = tr.Position.Add(physics.Velocity.Scale(dt))
		if tr.Position.Y <= t.Ragdoll.GroundY {
			tr.Position.Y = t.Ragdoll.GroundY
			physics.Velocity.Y = 0
			physics.Grounded = true
		}
		clampToArena(ecs.World, &tr.Position)
	}
}

func turnToward(current, target, maxStep float64) float64 {
	delta := gamemath.WrapAngle(target - current)
	delta = gamemath.Clamp(delta, -maxStep, maxStep)
	return gamemath.WrapAngle(current + delta)
}
