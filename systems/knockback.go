package systems

import (
	"math"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyKnockback launches the defender into a ragdoll and returns the
// velocity it was given. It returns the zero vector when the knockback is
// ignored: the defender is dead, a HEAVY is hit by melee, or a HEAVY is hit
// by anything weaker than the launch threshold.
func ApplyKnockback(ecs *ecs.ECS, defender *donburi.Entry, direction gamemath.Vec3, magnitude float64,
	attackType components.AttackType) gamemath.Vec3 {
	if defender == nil || !Alive(defender) || !defender.HasComponent(components.Ragdoll) {
		return gamemath.Vec3{}
	}
	if !gamemath.Finite(magnitude) || magnitude <= 0 {
		return gamemath.Vec3{}
	}

	t := tuning(ecs.World)
	if components.Combatant.Get(defender).Class == components.ClassHeavy {
		if attackType == components.AttackMelee || magnitude < t.Knockback.HeavyLaunchThreshold {
			return gamemath.Vec3{}
		}
	}

	dir := direction.Horizontal().Normalize()
	if dir.IsZero() {
		// No usable direction: push the defender backwards.
		dir = gamemath.FacingVector(components.Combatant.Get(defender).Facing).Scale(-1)
	}
	velocity := dir.Scale(magnitude)
	velocity.Y = magnitude * t.Knockback.UpwardBias

	gravityScale := t.Ragdoll.GravityScale
	if attackType == components.AttackEnvironment {
		gravityScale = t.Ragdoll.VelocityGravityScale
	}

	// Overwritten, never stacked.
	components.Ragdoll.SetValue(defender, components.RagdollData{
		Active:       true,
		Remaining:    t.Ragdoll.Duration,
		Velocity:     velocity,
		GravityScale: gravityScale,
	})
	physics := components.Physics.Get(defender)
	physics.Velocity = gamemath.Vec3{}
	physics.Grounded = false

	return velocity
}

// UpdateRagdolls integrates launched combatants on the effective delta. Dead
// bodies keep their ragdoll state frozen.
func UpdateRagdolls(ecs *ecs.ECS) {
	dt := simDelta(ecs.World)
	if dt <= 0 {
		return
	}
	t := tuning(ecs.World)
	friction := math.Pow(gamemath.Clamp01(t.Ragdoll.FrictionPerSecond), dt)

	for e := range components.Ragdoll.Iter(ecs.World) {
		rd := components.Ragdoll.Get(e)
		if !rd.Active || !Alive(e) {
			continue
		}
		tr := components.Transform.Get(e)

		rd.Remaining = math.Max(rd.Remaining-dt, 0)
		rd.Velocity.Y -= t.Ragdoll.Gravity * rd.GravityScale * dt
		tr.Position = tr.Position.Add(rd.Velocity.Scale(dt))
		rd.Velocity = rd.Velocity.Scale(friction)

		if tr.Position.Y <= t.Ragdoll.GroundY {
			tr.Position.Y = t.Ragdoll.GroundY
			if rd.Velocity.Y < 0 {
				rd.Velocity.Y = 0
			}
		}
		clampToArena(ecs.World, &tr.Position)

		if rd.Remaining <= 0 || rd.Velocity.Len() < t.Ragdoll.ExitVelocity {
			exitRagdoll(e, tr.Position.Y <= t.Ragdoll.GroundY+gamemath.Epsilon)
		}
	}
}

func exitRagdoll(e *donburi.Entry, grounded bool) {
	rd := components.Ragdoll.Get(e)
	physics := components.Physics.Get(e)
	physics.Velocity = gamemath.Vec3{Y: math.Min(rd.Velocity.Y, 0)}
	physics.Grounded = grounded
	rd.Active = false
	rd.Remaining = 0
	rd.Velocity = gamemath.Vec3{}
}
