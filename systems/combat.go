package systems

import (
	"math"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveMeleeAttack swings the attacker's melee weapon. The cooldown is
// spent even on a miss; only a connecting hit deals damage. It returns true
// when the swing connected.
func ResolveMeleeAttack(ecs *ecs.ECS, attacker *donburi.Entry) bool {
	if !canAttack(attacker) {
		return false
	}
	weapon := components.Weapon.Get(attacker)
	if weapon.MeleeCooldown > 0 {
		return false
	}
	t := tuning(ecs.World)
	weapon.MeleeCooldown = t.Melee.Cooldown

	origin := components.Transform.Get(attacker).Position
	target := acquire(ecs, attacker, TargetMelee, t.Melee.Range)
	if target == nil || distanceXZ(origin, target) > t.Melee.Range {
		publishSwing(ecs, attacker, components.AttackMelee)
		return false
	}

	direction := components.Transform.Get(target).Position.Sub(origin)
	resolveHit(ecs, attacker, target, t.Melee.Damage, direction, t.Melee.KnockbackForce, components.AttackMelee)
	return true
}

// ResolveRangedAttack fires a projectile from spawn toward the attacker's
// locked target, or straight ahead without one. It returns true when a
// projectile was launched; the hit itself is resolved by UpdateProjectileHits.
func ResolveRangedAttack(ecs *ecs.ECS, attacker *donburi.Entry, spawn gamemath.Vec3) bool {
	if !canAttack(attacker) || !spawnFinite(spawn) {
		return false
	}
	weapon := components.Weapon.Get(attacker)
	if weapon.RangedCooldown > 0 {
		return false
	}
	t := tuning(ecs.World)
	weapon.RangedCooldown = t.Ranged.Cooldown

	dir := gamemath.FacingVector(components.Combatant.Get(attacker).Facing)
	if target := acquire(ecs, attacker, TargetRanged, t.Targeting.AcquisitionRange); target != nil {
		if aim := components.Transform.Get(target).Position.Sub(spawn).Horizontal(); !aim.IsZero() {
			dir = aim.Normalize()
		}
	}

	factory.CreateProjectile(ecs, factory.ProjectileSpec{
		Owner:    attacker,
		Position: spawn,
		Velocity: dir.Scale(t.Ranged.Speed),
		Lifetime: t.Ranged.Lifetime,
		Damage:   t.Ranged.Damage,
		Force:    t.Melee.KnockbackForce * t.Ranged.ImpulseRatio,
		Radius:   t.Ranged.HitRadius,
	})
	publishSwing(ecs, attacker, components.AttackRanged)
	return true
}

// ApplyDamage runs damage from a non-attack source through the same path as
// an attack, with the environment attack type. It returns true when the
// damage killed the defender.
func ApplyDamage(ecs *ecs.ECS, source, defender *donburi.Entry, amount int, direction gamemath.Vec3, force float64) bool {
	if defender == nil || !Alive(defender) || amount < 0 {
		return false
	}
	return resolveHit(ecs, source, defender, amount, direction, force, components.AttackEnvironment).Lethal
}

// UpdateCombat drains queued DamageEvents.
func UpdateCombat(ecs *ecs.ECS) {
	var queued []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		queued = append(queued, e)
	}
	for _, e := range queued {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		ApplyDamage(ecs, dmg.Source, e, dmg.Amount, dmg.Direction, dmg.Force)
	}
}

// QueueDamage adds environment damage to be resolved at the start of the
// next frame. Damage queued twice in one frame accumulates.
func QueueDamage(e *donburi.Entry, amount int, direction gamemath.Vec3, force float64, source *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		dmg.Direction = direction
		dmg.Force = math.Max(dmg.Force, force)
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount:    amount,
		Direction: direction,
		Force:     force,
		Source:    source,
	})
}

// UpdateCooldowns ticks weapon cooldowns on simulation time.
func UpdateCooldowns(ecs *ecs.ECS) {
	dt := simDelta(ecs.World)
	for e := range components.Weapon.Iter(ecs.World) {
		w := components.Weapon.Get(e)
		w.MeleeCooldown = math.Max(w.MeleeCooldown-dt, 0)
		w.RangedCooldown = math.Max(w.RangedCooldown-dt, 0)
	}
}

// resolveHit applies one connecting hit: damage, knockback, shake, hit-stop,
// then the HitEvent. A lethal hit also runs death handling.
func resolveHit(ecs *ecs.ECS, attacker, defender *donburi.Entry, damage int, direction gamemath.Vec3,
	force float64, attackType components.AttackType) components.HitEvent {
	d := GetOrCreateDirector(ecs.World)
	t := &d.Tuning

	lethal := applyDamage(ecs, defender, damage)
	impulse := ApplyKnockback(ecs, defender, direction, force, attackType)

	weight := math.Min(1, gamemath.SafeDiv(float64(damage), t.Shake.DamageReference))
	d.Shake.AddImpulse(t.Shake.HitStrength*weight, t.Shake.HitDuration)
	d.Time.RequestHitstop(weight)

	evt := components.HitEvent{
		Attacker:   attacker,
		Defender:   defender,
		Damage:     damage,
		Impulse:    impulse,
		AttackType: attackType,
		Point:      components.Transform.Get(defender).Position,
		Lethal:     lethal,
	}
	HitOccurred.Publish(ecs.World, evt)
	if lethal {
		handleDeath(ecs, evt)
	}
	return evt
}

// applyDamage clamps health to [0, Max] and reports whether this call took
// it to zero. Damage against the dead is ignored.
func applyDamage(ecs *ecs.ECS, e *donburi.Entry, amount int) bool {
	if !Alive(e) {
		return false
	}
	t := tuning(ecs.World)
	hp := components.Health.Get(e)
	hp.Current = min(max(hp.Current-amount, 0), hp.Max)

	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = t.Effects.HealthBarDuration
	} else {
		donburi.Add(e, components.HealthBar, &components.HealthBarData{
			TimeToLive: t.Effects.HealthBarDuration,
		})
	}
	flash := components.Flash.Get(e)
	flash.Remaining = t.Effects.HitFlash
	flash.R, flash.G, flash.B = 1, 0.5, 0.5

	return hp.Current == 0
}

func publishSwing(ecs *ecs.ECS, attacker *donburi.Entry, attackType components.AttackType) {
	HitOccurred.Publish(ecs.World, components.HitEvent{
		Attacker:   attacker,
		AttackType: attackType,
		Point:      components.Transform.Get(attacker).Position,
	})
}

// acquire refreshes the attacker's lock from the spatial index.
func acquire(ecs *ecs.ECS, attacker *donburi.Entry, mode TargetMode, radius float64) *donburi.Entry {
	d := GetOrCreateDirector(ecs.World)
	origin := components.Transform.Get(attacker).Position
	lock := components.TargetLock.Get(attacker)
	*lock = AcquireOrKeep(attacker, CandidatesNear(ecs.World, origin, radius), *lock, d.Now, mode, &d.Tuning)
	return lock.Target
}

// canAttack is false for the dead, the deactivated and the ragdolled.
func canAttack(e *donburi.Entry) bool {
	if e == nil || !Alive(e) {
		return false
	}
	return components.Combatant.Get(e).Active && !components.Ragdoll.Get(e).Active
}

func spawnFinite(v gamemath.Vec3) bool {
	return gamemath.Finite(v.X) && gamemath.Finite(v.Y) && gamemath.Finite(v.Z)
}
