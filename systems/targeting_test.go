package systems

import (
	"testing"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

func TestAcquireTieGoesToFirstCandidate(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	left := spawnNPC(e, components.ClassStandard, -1, 2)
	spawnNPC(e, components.ClassStandard, 1, 2)

	candidates := CandidatesNear(e.World, gamemath.Vec3{}, 18)
	lock := AcquireOrKeep(player, candidates, components.TargetLockData{}, 0, TargetRanged, tuning(e.World))
	if lock.Target != left {
		t.Fatal("equal scores should keep the lower-ID candidate")
	}
}

func TestAcquirePrefersFacingOverDistance(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	spawnNPC(e, components.ClassStandard, 1.2, 1.2)
	ahead := spawnNPC(e, components.ClassStandard, 0, 2.2)

	candidates := CandidatesNear(e.World, gamemath.Vec3{}, 18)
	lock := AcquireOrKeep(player, candidates, components.TargetLockData{}, 0, TargetMelee, tuning(e.World))
	if lock.Target != ahead {
		t.Fatal("expected the target dead ahead")
	}
}

func TestAcquireRejects(t *testing.T) {
	tests := []struct {
		name string
		x, z float64
		mode TargetMode
	}{
		{"behind", 0, -1.5, TargetMelee},
		{"outside cone", 2, 0.2, TargetRanged},
		{"beyond melee range", 0, 3, TargetMelee},
		{"beyond acquisition range", 0, 19, TargetRanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := spawnPlayer(e)
			spawnNPC(e, components.ClassStandard, tt.x, tt.z)

			candidates := CandidatesNear(e.World, gamemath.Vec3{}, 20)
			lock := AcquireOrKeep(player, candidates, components.TargetLockData{}, 0, tt.mode, tuning(e.World))
			if lock.Target != nil {
				t.Fatal("candidate should have been rejected")
			}
		})
	}
}

func TestAcquireSkipsAlliesAndTheDead(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	ally := spawnNPC(e, components.ClassStandard, 0, 1)
	components.Combatant.Get(ally).Team = 0
	dead := spawnNPC(e, components.ClassStandard, 0, 1.5)
	components.Health.Get(dead).Current = 0

	candidates := CandidatesNear(e.World, gamemath.Vec3{}, 18)
	lock := AcquireOrKeep(player, candidates, components.TargetLockData{}, 0, TargetRanged, tuning(e.World))
	if lock.Target != nil {
		t.Fatal("locked onto an ally or a corpse")
	}
}

func TestStickyLockKeptInsideCone(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	offAxis := spawnNPC(e, components.ClassStandard, 1.5, 2)
	ahead := spawnNPC(e, components.ClassStandard, 0, 2)

	// ahead would win a rescan; the lock holds while offAxis stays in the cone.
	lock := components.TargetLockData{Target: offAxis}
	candidates := CandidatesNear(e.World, gamemath.Vec3{}, 18)
	lock = AcquireOrKeep(player, candidates, lock, 1.5, TargetRanged, tuning(e.World))
	if lock.Target != offAxis {
		t.Fatal("lock inside the cone and lock range was dropped")
	}
	if lock.LastValidTime != 1.5 {
		t.Fatalf("LastValidTime = %v, want 1.5", lock.LastValidTime)
	}

	components.Transform.Get(offAxis).Position = gamemath.Vec3{X: 3, Z: 4}
	lock = AcquireOrKeep(player, candidates, lock, 2, TargetRanged, tuning(e.World))
	if lock.Target != ahead {
		t.Fatal("lock beyond lock range was not re-acquired")
	}
}

func TestStickyLockDroppedOutsideCone(t *testing.T) {
	tests := []struct {
		name   string
		locked gamemath.Vec3
	}{
		{"beside", gamemath.Vec3{X: 3}},
		{"behind", gamemath.Vec3{Z: -3.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := spawnPlayer(e)
			stale := spawnNPC(e, components.ClassStandard, tt.locked.X, tt.locked.Z)
			ahead := spawnNPC(e, components.ClassStandard, 0, 2)

			lock := components.TargetLockData{Target: stale}
			candidates := CandidatesNear(e.World, gamemath.Vec3{}, 18)
			lock = AcquireOrKeep(player, candidates, lock, 1, TargetRanged, tuning(e.World))
			if lock.Target != ahead {
				t.Fatal("lock outside the cone was kept")
			}
		})
	}
}

func TestMeleeIgnoresLockBehindAttacker(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	behind := spawnNPC(e, components.ClassStandard, 0, -3.5)
	ahead := spawnNPC(e, components.ClassStandard, 0, 1.5)
	components.TargetLock.Get(player).Target = behind

	if !ResolveMeleeAttack(e, player) {
		t.Fatal("melee missed the hostile in front")
	}
	if got := health(ahead); got != 85 {
		t.Fatalf("ahead health = %d, want 85", got)
	}
	if got := health(behind); got != 100 {
		t.Fatalf("behind health = %d, want 100", got)
	}
	if components.TargetLock.Get(player).Target != ahead {
		t.Fatal("lock did not move to the hostile in front")
	}
}

func TestSwitchTargetIgnoresHostilesBehind(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	spawnNPC(e, components.ClassStandard, 0, -2)
	ahead := spawnNPC(e, components.ClassStandard, 0, 3)

	if got := SwitchTarget(e, player, 1); got != ahead {
		t.Fatal("switch picked a hostile outside the cone")
	}
	if got := SwitchTarget(e, player, 1); got != ahead {
		t.Fatal("switch with no other hostile in the cone changed the lock")
	}
}

func TestMeleeLockOutsideMeleeRangeMisses(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	far := spawnNPC(e, components.ClassStandard, 0, 3)
	components.TargetLock.Get(player).Target = far

	if ResolveMeleeAttack(e, player) {
		t.Fatal("melee connected beyond its range")
	}
	if health(far) != 100 {
		t.Fatal("locked target took damage")
	}
}

func TestSwitchTargetCyclesAroundAttacker(t *testing.T) {
	e := newTestECS(t)
	player := spawnPlayer(e)
	left := spawnNPC(e, components.ClassStandard, -2, 2)
	mid := spawnNPC(e, components.ClassStandard, 0, 3)
	right := spawnNPC(e, components.ClassStandard, 2, 2)
	components.TargetLock.Get(player).Target = mid

	steps := []struct {
		direction int
		want      string
	}{
		{1, "right"},
		{1, "left"},
		{-1, "right"},
		{-1, "mid"},
	}
	byName := map[string]*donburi.Entry{"left": left, "mid": mid, "right": right}
	for i, s := range steps {
		got := SwitchTarget(e, player, s.direction)
		if got != byName[s.want] {
			t.Fatalf("step %d: switch %+d picked the wrong target, want %s", i, s.direction, s.want)
		}
		if components.TargetLock.Get(player).Target != got {
			t.Fatalf("step %d: lock not updated", i)
		}
	}
}

func TestCandidatesNearIsOrderedByID(t *testing.T) {
	e := newTestECS(t)
	spawnPlayer(e)
	spawnNPC(e, components.ClassStandard, 3, 0)
	spawnNPC(e, components.ClassStandard, -3, 0)
	spawnNPC(e, components.ClassStandard, 0, 9)

	found := CandidatesNear(e.World, gamemath.Vec3{}, 4)
	if len(found) != 3 {
		t.Fatalf("found %d candidates, want 3", len(found))
	}
	for i := 1; i < len(found); i++ {
		if components.Combatant.Get(found[i-1]).ID >= components.Combatant.Get(found[i]).ID {
			t.Fatal("candidates not in ID order")
		}
	}
}

func TestCandidatesNearFollowsMovedBodies(t *testing.T) {
	e := newTestECS(t)
	npc := spawnNPC(e, components.ClassStandard, 0, 0)

	components.Transform.Get(npc).Position = gamemath.Vec3{X: 10, Z: 10}
	UpdateSpatialIndex(e)

	if got := CandidatesNear(e.World, gamemath.Vec3{}, 2); len(got) != 0 {
		t.Fatal("stale index entry at the old position")
	}
	if got := CandidatesNear(e.World, gamemath.Vec3{X: 10, Z: 10}, 1); len(got) != 1 {
		t.Fatal("moved body not found at its new position")
	}
}
