package systems

import (
	"math"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectileHits resolves the path each projectile swept during the
// previous frame's move against where combatants ended that frame. It runs
// with the other hit resolution, ahead of the time-dilation tick, so a
// projectile's hit-stop applies to the frame that resolves it.
func UpdateProjectileHits(ecs *ecs.ECS) {
	var spent []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		pos := components.Transform.Get(e).Position

		target := projectileTarget(ecs, p, pos)
		if target == nil {
			return
		}
		owner := p.Owner
		if owner != nil && !owner.Valid() {
			owner = nil
		}
		resolveHit(ecs, owner, target, p.Damage, p.Velocity, p.Force, components.AttackRanged)
		spent = append(spent, e)
	})

	for _, e := range spent {
		e.Remove()
	}
}

// UpdateProjectiles moves projectiles on simulation time and expires them.
// The move is remembered in Previous for the next frame's hit test.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := simDelta(ecs.World)
	if dt <= 0 {
		return
	}

	var expired []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		tr := components.Transform.Get(e)

		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			expired = append(expired, e)
			return
		}
		p.Previous = tr.Position
		tr.Position = tr.Position.Add(p.Velocity.Scale(dt))
	})

	for _, e := range expired {
		e.Remove()
	}
}

// projectileTarget returns the hostile the swept segment reaches first,
// strictly inside the hit radius. Equal contact points go to the lower
// combatant ID.
func projectileTarget(ecs *ecs.ECS, p *components.ProjectileData, pos gamemath.Vec3) *donburi.Entry {
	mid := p.Previous.Add(pos).Scale(0.5)
	reach := pos.Sub(p.Previous).Len()/2 + p.Radius

	var best *donburi.Entry
	bestT := math.Inf(1)
	for _, c := range CandidatesNear(ecs.World, mid, reach) {
		if !projectileCanHit(p.Owner, c) {
			continue
		}
		center := components.Transform.Get(c).Position
		closest, t := gamemath.ClosestOnSegment(p.Previous, pos, center)
		if center.Sub(closest).Len() >= p.Radius {
			continue
		}
		if t < bestT {
			best, bestT = c, t
		}
	}
	return best
}

func projectileCanHit(owner, c *donburi.Entry) bool {
	if owner == nil || !owner.Valid() {
		return Alive(c) && components.Combatant.Get(c).Active
	}
	return Targetable(owner, c)
}
