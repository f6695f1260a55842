package components

import (
	"github.com/automoto/impact/shared/leveldata"
	"github.com/yohamta/donburi"
)

// FlashData tracks the hit flash on a combatant
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// HazardData is an environment damage volume as placed in the arena file,
// plus the countdown to its next tick.
type HazardData struct {
	leveldata.Hazard
	Timer float64
}

var Hazard = donburi.NewComponentType[HazardData]()
