package components

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the non-ragdoll motion of a combatant: commanded walking
// and settling back to the ground after a ragdoll ends mid-air.
type PhysicsData struct {
	Velocity gamemath.Vec3
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// RagdollData is the launched state. There is exactly one per combatant; a new
// qualifying hit overwrites it.
type RagdollData struct {
	Active       bool
	Remaining    float64
	Velocity     gamemath.Vec3
	GravityScale float64
}

var Ragdoll = donburi.NewComponentType[RagdollData]()
