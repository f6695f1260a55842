package systems

import (
	"math"
	"testing"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/shared/leveldata"
	"github.com/automoto/impact/shared/timescale"
	"github.com/automoto/impact/systems/factory"
	"github.com/automoto/impact/tags"
	"github.com/yohamta/donburi"
)

func TestMeleeHitOnStandardLaunchesAndFreezes(t *testing.T) {
	e := newTestECS(t)
	Install(e)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassStandard, 0, 1.5)

	var hits []components.HitEvent
	OnHit(e.World, func(_ donburi.World, evt components.HitEvent) { hits = append(hits, evt) })

	components.Intent.Get(player).Melee = true
	Frame(e, frameDt)

	if got := health(npc); got != 85 {
		t.Fatalf("health = %d, want 85", got)
	}
	rd := components.Ragdoll.Get(npc)
	if !rd.Active {
		t.Fatal("ragdoll not active after melee hit")
	}
	if !approx(rd.Velocity.Y, 10) || !approx(rd.Velocity.Z, 25) || !approx(rd.Velocity.X, 0) {
		t.Fatalf("ragdoll velocity = %+v, want (0, 10, 25)", rd.Velocity)
	}

	d := GetOrCreateDirector(e.World)
	if phase := d.Time.Hitstop().Phase(); phase != timescale.PhaseFreeze {
		t.Fatalf("hitstop phase = %v, want freeze", phase)
	}
	if s := EffectiveTimeScale(e.World); s != 0 {
		t.Fatalf("effective scale = %v, want 0 on the hit frame", s)
	}
	if m := ComboState(e.World).Multiplier; m != 1 {
		t.Fatalf("combo multiplier = %d, want 1", m)
	}

	if len(hits) != 1 {
		t.Fatalf("got %d hit events, want 1", len(hits))
	}
	if hits[0].Damage != 15 || hits[0].Defender != npc || hits[0].AttackType != components.AttackMelee {
		t.Fatalf("unexpected hit event %+v", hits[0])
	}
	if components.Intent.Get(player).Melee {
		t.Fatal("melee intent not cleared")
	}
}

func TestMeleeHitOnHeavyDoesNotLaunch(t *testing.T) {
	e := newTestECS(t)
	Install(e)
	player := spawnPlayer(e)
	heavy := spawnNPC(e, components.ClassHeavy, 0, 1.5)

	components.Intent.Get(player).Melee = true
	Frame(e, frameDt)

	if got := health(heavy); got != 205 {
		t.Fatalf("health = %d, want 205", got)
	}
	if components.Ragdoll.Get(heavy).Active {
		t.Fatal("heavy should not ragdoll from melee")
	}
	if m := ComboState(e.World).Multiplier; m != 0 {
		t.Fatalf("combo multiplier = %d, want 0", m)
	}
	if phase := GetOrCreateDirector(e.World).Time.Hitstop().Phase(); phase != timescale.PhaseFreeze {
		t.Fatalf("hitstop phase = %v, want freeze", phase)
	}
}

func TestHitstopRecoversToFullSpeed(t *testing.T) {
	e := newTestECS(t)
	Install(e)
	player := spawnPlayer(e)
	spawnNPC(e, components.ClassHeavy, 0, 1.5)

	components.Intent.Get(player).Melee = true
	for i := 0; i < 30; i++ {
		Frame(e, frameDt)
	}
	if s := EffectiveTimeScale(e.World); s != 1 {
		t.Fatalf("effective scale = %v after 0.5s, want 1", s)
	}
}

func TestMeleeMissSpendsCooldown(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	behind := spawnNPC(e, components.ClassStandard, 0, -1.5)

	var swings int
	OnHit(e.World, func(_ donburi.World, evt components.HitEvent) {
		if evt.Defender == nil {
			swings++
		}
	})

	if ResolveMeleeAttack(e, player) {
		t.Fatal("melee connected with a target behind the attacker")
	}
	if cd := components.Weapon.Get(player).MeleeCooldown; cd <= 0 {
		t.Fatalf("cooldown = %v, want it spent on a miss", cd)
	}
	if health(behind) != 100 {
		t.Fatal("target behind took damage")
	}
	UpdateEvents(e)
	if swings != 1 {
		t.Fatalf("got %d swing events, want 1", swings)
	}
}

func TestMeleeOnCooldownIsRejected(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassHeavy, 0, 1.5)

	if !ResolveMeleeAttack(e, player) {
		t.Fatal("first swing missed")
	}
	if ResolveMeleeAttack(e, player) {
		t.Fatal("second swing ignored the cooldown")
	}
	if got := health(npc); got != 205 {
		t.Fatalf("health = %d, want a single hit", got)
	}
}

func TestRagdolledAttackerCannotSwing(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	spawnNPC(e, components.ClassStandard, 0, 1.5)

	ApplyKnockback(e, player, gamemath.Vec3{Z: -1}, 20, components.AttackEnvironment)
	if ResolveMeleeAttack(e, player) {
		t.Fatal("ragdolled attacker landed a hit")
	}
}

func TestLethalHitRunsDeathOnce(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassStandard, 0, 1.5)
	components.Health.Get(npc).Current = 10

	var deaths []components.HitEvent
	OnDeath(e.World, func(_ donburi.World, evt components.HitEvent) { deaths = append(deaths, evt) })

	if !ResolveMeleeAttack(e, player) {
		t.Fatal("lethal swing missed")
	}
	if health(npc) != 0 {
		t.Fatalf("health = %d, want 0", health(npc))
	}
	if components.Ragdoll.Get(npc).Active {
		t.Fatal("dead body was launched")
	}
	if ApplyDamage(e, nil, npc, 50, gamemath.Vec3{Z: 1}, 10) {
		t.Fatal("damage on a dead combatant reported a kill")
	}
	UpdateEvents(e)

	if len(deaths) != 1 {
		t.Fatalf("got %d death events, want 1", len(deaths))
	}
	if !deaths[0].Lethal || deaths[0].Attacker != player {
		t.Fatalf("unexpected death event %+v", deaths[0])
	}
	if !GetOrCreateDirector(e.World).Time.GlobalFreeze().Active() {
		t.Fatal("death did not request the global freeze")
	}

	evt, ok := ConsumeDeath(e.World)
	if !ok || evt.Defender != npc {
		t.Fatalf("ConsumeDeath = %+v, %v", evt, ok)
	}
	if _, ok := ConsumeDeath(e.World); ok {
		t.Fatal("death consumed twice")
	}
}

func TestHealthClampsAtBounds(t *testing.T) {
	e := newTestECS(t)
	npc := spawnNPC(e, components.ClassStandard, 0, 0)

	ApplyDamage(e, nil, npc, -500, gamemath.Vec3{}, 0)
	if cur, max := Health(npc); cur != max {
		t.Fatalf("negative damage healed past max: %d/%d", cur, max)
	}
	if !ApplyDamage(e, nil, npc, 1000, gamemath.Vec3{}, 0) {
		t.Fatal("overkill not lethal")
	}
	if health(npc) != 0 {
		t.Fatalf("health = %d, want 0", health(npc))
	}
}

func TestProjectileHitsFirstHostileInSphere(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassStandard, 0, 5)

	if !ResolveRangedAttack(e, player, RangedSpawn(player)) {
		t.Fatal("ranged attack did not launch")
	}

	for i := 0; i < 20 && countProjectiles(e.World) > 0; i++ {
		UpdateProjectileHits(e)
		tickTime(e, frameDt)
		UpdateProjectiles(e)
	}

	if countProjectiles(e.World) != 0 {
		t.Fatal("projectile never resolved")
	}
	if got := health(npc); got != 90 {
		t.Fatalf("health = %d, want 90", got)
	}
	rd := components.Ragdoll.Get(npc)
	if !rd.Active || !approx(rd.Velocity.Y, 7) {
		t.Fatalf("ragdoll = %+v, want active with vy 7", rd)
	}
}

func TestProjectileHitFreezesItsOwnFrame(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassStandard, 0, 3)
	ResolveRangedAttack(e, player, RangedSpawn(player))

	for i := 0; i < 20; i++ {
		UpdateProjectileHits(e)
		hit := health(npc) < 100
		tickTime(e, frameDt)
		if hit {
			if scale := EffectiveTimeScale(e.World); scale != 0 {
				t.Fatalf("time scale = %v on the impact frame, want 0", scale)
			}
			return
		}
		UpdateProjectiles(e)
	}
	t.Fatal("projectile never hit")
}

func TestProjectileSweepsPastLargeSteps(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	npc := spawnNPC(e, components.ClassStandard, 0, 2.5)
	cfg := tuning(e.World)
	factory.CreateProjectile(e, factory.ProjectileSpec{
		Owner:    player,
		Position: gamemath.Vec3{Z: 1},
		Velocity: gamemath.Vec3{Z: cfg.Ranged.Speed},
		Lifetime: cfg.Ranged.Lifetime,
		Damage:   cfg.Ranged.Damage,
		Radius:   cfg.Ranged.HitRadius,
	})

	// One max step carries the projectile from z=1 to z=4, past the target.
	tickTime(e, cfg.Frame.MaxStep)
	UpdateProjectiles(e)
	UpdateProjectileHits(e)

	if got := health(npc); got != 100-cfg.Ranged.Damage {
		t.Fatalf("health = %d, want %d", got, 100-cfg.Ranged.Damage)
	}
	if countProjectiles(e.World) != 0 {
		t.Fatal("projectile survived its hit")
	}
}

func TestProjectileExpires(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)

	ResolveRangedAttack(e, player, RangedSpawn(player))
	for i := 0; i < 120; i++ {
		tickTime(e, frameDt)
		UpdateProjectiles(e)
	}
	if n := countProjectiles(e.World); n != 0 {
		t.Fatalf("%d projectiles outlived their lifetime", n)
	}
}

func TestRangedRejectsNonFiniteSpawn(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)

	if ResolveRangedAttack(e, player, gamemath.Vec3{X: math.NaN()}) {
		t.Fatal("launched a projectile from a non-finite spawn")
	}
}

func TestHazardQueuesEnvironmentDamage(t *testing.T) {
	e := newTestECS(t)
	npc := spawnNPC(e, components.ClassStandard, 1, 1)
	outside := spawnNPC(e, components.ClassStandard, 5, 5)
	factory.CreateHazard(e, leveldata.Hazard{X: 0, Z: 0, W: 2, D: 2, Damage: 5, Interval: 0.5})

	for i := 0; i < 31; i++ {
		tickTime(e, frameDt)
		UpdateCombat(e)
		UpdateHazards(e)
	}
	UpdateCombat(e)

	if got := health(npc); got != 95 {
		t.Fatalf("health = %d, want 95", got)
	}
	if got := health(outside); got != 100 {
		t.Fatalf("combatant outside the hazard took damage: %d", got)
	}
}

func TestQueuedDamageAccumulates(t *testing.T) {
	e := newTestECS(t)
	npc := spawnNPC(e, components.ClassStandard, 0, 0)

	QueueDamage(npc, 4, gamemath.Vec3{X: 1}, 0, nil)
	QueueDamage(npc, 6, gamemath.Vec3{X: 1}, 0, nil)
	UpdateCombat(e)

	if got := health(npc); got != 90 {
		t.Fatalf("health = %d, want 90", got)
	}
	if npc.HasComponent(components.DamageEvent) {
		t.Fatal("damage event not drained")
	}
}

func countProjectiles(w donburi.World) int {
	n := 0
	tags.Projectile.Each(w, func(*donburi.Entry) { n++ })
	return n
}
