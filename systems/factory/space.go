package factory

import (
	"math"

	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spaceScale  = 16.0 // space units per world unit
	spaceMargin = 16.0 // world units of index around the arena for launched bodies
	spaceCell   = 32
)

// CreateSpace spawns the spatial index for an arena of the given size in
// world units. A zero size gives an unclamped index around the origin.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	space := archetypes.Spatial.Spawn(ecs)
	w := int(math.Ceil((width + 2*spaceMargin) * spaceScale))
	h := int(math.Ceil((depth + 2*spaceMargin) * spaceScale))
	components.Spatial.SetValue(space, components.SpatialData{
		Space:   resolv.NewSpace(w, h, spaceCell, spaceCell),
		OriginX: spaceMargin,
		OriginZ: spaceMargin,
		Scale:   spaceScale,
		Width:   width,
		Depth:   depth,
	})
	return space
}
