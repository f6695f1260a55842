package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpatialData is the broad-phase index over combatants. Resolv only indexes
// positive space coordinates, so world XZ is offset by the origin and scaled.
type SpatialData struct {
	Space   *resolv.Space
	OriginX float64 // world x of the arena's left edge is -OriginX in space terms
	OriginZ float64
	Scale   float64 // space units per world unit
	Width   float64 // playable arena size in world units
	Depth   float64
}

// ToSpace converts a world XZ point into space coordinates.
func (s *SpatialData) ToSpace(x, z float64) (float64, float64) {
	return (x + s.OriginX) * s.Scale, (z + s.OriginZ) * s.Scale
}

// Clamp keeps a world XZ point inside the playable arena.
func (s *SpatialData) Clamp(x, z float64) (float64, float64) {
	if s.Width > 0 {
		x = min(max(x, 0), s.Width)
	}
	if s.Depth > 0 {
		z = min(max(z, 0), s.Depth)
	}
	return x, z
}

var Spatial = donburi.NewComponentType[SpatialData]()
