package systems

import (
	"math"
	"sort"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TargetMode selects the range a rescan uses.
type TargetMode int

const (
	TargetMelee TargetMode = iota
	TargetRanged
)

// AcquireOrKeep returns the attacker's updated lock. A living locked target
// is kept while it stays inside the forward cone and within lock range.
// Otherwise candidates are rescanned inside the cone and scored by
// facingDot*FacingWeight - distance/range; the first candidate to reach the
// best score wins, so callers must pass candidates in a stable order.
func AcquireOrKeep(attacker *donburi.Entry, candidates []*donburi.Entry, lock components.TargetLockData,
	now float64, mode TargetMode, t *config.Tuning) components.TargetLockData {
	origin := components.Transform.Get(attacker).Position
	facing := gamemath.FacingVector(components.Combatant.Get(attacker).Facing)
	coneCos := coneCosine(t)

	if lock.Target != nil && Targetable(attacker, lock.Target) {
		facingDot, dist := bearing(origin, facing, lock.Target)
		if dist <= t.Targeting.LockRange && facingDot >= coneCos {
			lock.LastValidTime = now
			return lock
		}
	}

	rng := t.Targeting.AcquisitionRange
	if mode == TargetMelee {
		rng = math.Min(rng, t.Melee.Range)
	}

	var best *donburi.Entry
	bestScore := math.Inf(-1)
	for _, c := range candidates {
		if !Targetable(attacker, c) {
			continue
		}
		facingDot, dist := bearing(origin, facing, c)
		if dist > rng || facingDot < coneCos {
			continue
		}
		if mode == TargetMelee && facingDot < t.Targeting.MinFacingDot {
			continue
		}

		score := facingDot*t.Targeting.FacingWeight - gamemath.SafeDiv(dist, rng)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	lock.Target = best
	if best != nil {
		lock.LastValidTime = now
	}
	return lock
}

// Targetable reports whether c is a living, active hostile of attacker.
func Targetable(attacker, c *donburi.Entry) bool {
	if c == nil || !c.Valid() || c.Entity() == attacker.Entity() {
		return false
	}
	if !c.HasComponent(components.Combatant) || !Alive(c) {
		return false
	}
	them := components.Combatant.Get(c)
	if !them.Active {
		return false
	}
	return them.Team != components.Combatant.Get(attacker).Team
}

// Alive reports whether the combatant still has health and no death record.
func Alive(e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	return !components.Health.Get(e).Dead()
}

// SwitchTarget moves the attacker's lock to the next hostile inside its
// forward cone: direction > 0 picks the nearest candidate clockwise of the
// current target, direction < 0 the nearest counter-clockwise, wrapping at
// the cone edges.
func SwitchTarget(ecs *ecs.ECS, attacker *donburi.Entry, direction int) *donburi.Entry {
	if direction == 0 || !Alive(attacker) {
		return nil
	}
	t := tuning(ecs.World)
	cb := components.Combatant.Get(attacker)
	lock := components.TargetLock.Get(attacker)
	origin := components.Transform.Get(attacker).Position

	facing := gamemath.FacingVector(cb.Facing)
	coneCos := coneCosine(t)

	relative := func(e *donburi.Entry) float64 {
		offset := components.Transform.Get(e).Position.Sub(origin)
		return gamemath.WrapAngle(gamemath.FacingAngle(offset) - cb.Facing)
	}

	type option struct {
		entry *donburi.Entry
		angle float64
	}
	var options []option
	for _, c := range CandidatesNear(ecs.World, origin, t.Targeting.AcquisitionRange) {
		if !Targetable(attacker, c) || (lock.Target != nil && c.Entity() == lock.Target.Entity()) {
			continue
		}
		if facingDot, _ := bearing(origin, facing, c); facingDot < coneCos {
			continue
		}
		options = append(options, option{entry: c, angle: relative(c)})
	}
	if len(options) == 0 {
		return lock.Target
	}
	// Stable: equal angles keep ID order from CandidatesNear.
	sort.SliceStable(options, func(i, j int) bool { return options[i].angle < options[j].angle })

	current := 0.0
	if lock.Target != nil && Targetable(attacker, lock.Target) {
		current = relative(lock.Target)
	}

	pick := options[0].entry
	if direction > 0 {
		for _, o := range options {
			if o.angle > current {
				pick = o.entry
				break
			}
		}
	} else {
		pick = options[len(options)-1].entry
		for i := len(options) - 1; i >= 0; i-- {
			if options[i].angle < current {
				pick = options[i].entry
				break
			}
		}
	}

	lock.Target = pick
	lock.LastValidTime = GetOrCreateDirector(ecs.World).Now
	return pick
}

// bearing returns how directly c lies along facing and its XZ distance.
// Overlapping bodies count as dead ahead.
func bearing(origin, facing gamemath.Vec3, c *donburi.Entry) (facingDot, dist float64) {
	offset := components.Transform.Get(c).Position.Sub(origin).Horizontal()
	dist = offset.Len()
	if dist <= gamemath.Epsilon {
		return 1, dist
	}
	return facing.Dot(offset.Scale(1 / dist)), dist
}

func coneCosine(t *config.Tuning) float64 {
	return math.Cos(t.Targeting.ConeAngle / 2 * math.Pi / 180)
}

func distanceXZ(origin gamemath.Vec3, e *donburi.Entry) float64 {
	return components.Transform.Get(e).Position.Sub(origin).Horizontal().Len()
}
