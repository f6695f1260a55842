package components

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

type AttackType int

const (
	AttackMelee AttackType = iota
	AttackRanged
	AttackEnvironment
)

func (a AttackType) String() string {
	switch a {
	case AttackMelee:
		return "melee"
	case AttackRanged:
		return "ranged"
	case AttackEnvironment:
		return "environment"
	}
	return "unknown"
}

// HitEvent is the immutable record of one attack. Defender is nil for a
// swing that connected with nothing.
type HitEvent struct {
	Attacker   *donburi.Entry
	Defender   *donburi.Entry
	Damage     int
	Impulse    gamemath.Vec3
	AttackType AttackType
	Point      gamemath.Vec3
	Lethal     bool
}

// Swing reports whether the event is a miss.
func (h HitEvent) Swing() bool { return h.Defender == nil }

type TargetLockData struct {
	Target        *donburi.Entry
	LastValidTime float64
}

var TargetLock = donburi.NewComponentType[TargetLockData]()

// WeaponData holds the remaining cooldowns in seconds.
type WeaponData struct {
	MeleeCooldown  float64
	RangedCooldown float64
}

var Weapon = donburi.NewComponentType[WeaponData]()

// IntentData is the discrete command set for one frame. Input (or AI) writes
// it, the command system consumes and clears it.
type IntentData struct {
	Melee  bool
	Ranged bool
	Switch int           // -1 previous target, +1 next target
	Move   gamemath.Vec3 // desired XZ direction, unnormalized
}

var Intent = donburi.NewComponentType[IntentData]()

type ProjectileData struct {
	Owner    *donburi.Entry
	Previous gamemath.Vec3 // position before the last move; hits are swept from here
	Velocity gamemath.Vec3
	Lifetime float64
	Damage   int
	Force    float64
	Radius   float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
