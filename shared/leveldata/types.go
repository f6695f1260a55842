// Package leveldata provides TMX arena parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Arena holds everything the combat engine needs from a TMX arena file.
// All coordinates are world units: one tile is one unit, TMX y maps to world z.
type Arena struct {
	Name       string
	Width      float64
	Depth      float64
	Combatants []CombatantSpawn
	Hazards    []Hazard
}

// CombatantSpawn is one entry of the "Combatants" object group.
type CombatantSpawn struct {
	X, Z      float64
	Kind      string // "player", "npc", "boss"
	Class     string // "standard", "heavy"
	Team      int
	FacingDeg float64 // 0 faces +Z, 90 faces +X
}

// Hazard is an environment damage volume from the "Hazards" object group.
// Combatants standing inside it take Damage every Interval seconds and are
// launched along Direction (degrees, same convention as FacingDeg).
type Hazard struct {
	X, Z, W, D float64
	Damage     int
	Force      float64
	Interval   float64
	Direction  float64
}

// Contains reports whether the world point lies inside the hazard rectangle.
func (h Hazard) Contains(x, z float64) bool {
	return x >= h.X && x <= h.X+h.W && z >= h.Z && z <= h.Z+h.D
}
