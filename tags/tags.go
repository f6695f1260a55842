package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	NPC        = donburi.NewTag().SetName("NPC")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Hazard     = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for the spatial index
const (
	ResolvCombatant = "combatant"
	ResolvProbe     = "probe"
)
