package components

import "github.com/yohamta/donburi"

// DeathData marks a combatant whose death has been handled. Its presence is
// the guard that keeps death handling to exactly once.
type DeathData struct {
	Time   float64 // raw clock at the moment of death
	Killer *donburi.Entry
}

var Death = donburi.NewComponentType[DeathData]()
