package components

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageEventData is damage queued by something other than an attack
// (hazards, scripted collaborators). It goes through the same damage and
// knockback path as attacks, with the environment attack type.
type DamageEventData struct {
	Amount    int
	Direction gamemath.Vec3
	Force     float64
	Source    *donburi.Entry // nil for the environment
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
