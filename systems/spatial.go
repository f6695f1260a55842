package systems

import (
	"sort"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpatialIndex moves every combatant's resolv object to its transform.
func UpdateSpatialIndex(ecs *ecs.ECS) {
	spatial, ok := spatialIndex(ecs.World)
	if !ok {
		return
	}
	for e := range components.Combatant.Iter(ecs.World) {
		SyncObject(spatial, e)
	}
}

// SyncObject places the entry's resolv object over its current position.
func SyncObject(spatial *components.SpatialData, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	pos := components.Transform.Get(e).Position
	x, z := spatial.ToSpace(pos.X, pos.Z)
	obj.X = x - obj.W/2
	obj.Y = z - obj.H/2
	obj.Update()
}

// CandidatesNear returns live and dead combatants whose position lies within
// radius of pos on the XZ plane, ordered by combatant ID. Callers filter by
// liveness and team.
func CandidatesNear(w donburi.World, pos gamemath.Vec3, radius float64) []*donburi.Entry {
	if !gamemath.Finite(radius) || radius < 0 {
		return nil
	}

	var found []*donburi.Entry
	spatial, ok := spatialIndex(w)
	if ok {
		found = queryIndex(spatial, pos, radius)
	} else {
		for e := range components.Combatant.Iter(w) {
			if withinXZ(e, pos, radius) {
				found = append(found, e)
			}
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return components.Combatant.Get(found[i]).ID < components.Combatant.Get(found[j]).ID
	})
	return found
}

// queryIndex drops a temporary probe into the space, the same way the
// respawn search checks positions, and narrows the cell hits by distance.
func queryIndex(spatial *components.SpatialData, pos gamemath.Vec3, radius float64) []*donburi.Entry {
	x, z := spatial.ToSpace(pos.X, pos.Z)
	r := radius * spatial.Scale
	probe := resolv.NewObject(x-r, z-r, 2*r, 2*r, tags.ResolvProbe)
	spatial.Space.Add(probe)
	defer spatial.Space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvCombatant)
	if collision == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool, len(collision.Objects))
	var found []*donburi.Entry
	for _, obj := range collision.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		if withinXZ(e, pos, radius) {
			found = append(found, e)
		}
	}
	return found
}

func withinXZ(e *donburi.Entry, pos gamemath.Vec3, radius float64) bool {
	if !e.Valid() || !e.HasComponent(components.Transform) {
		return false
	}
	d := components.Transform.Get(e).Position.Sub(pos).Horizontal()
	return d.LenSq() <= radius*radius
}

func spatialIndex(w donburi.World) (*components.SpatialData, bool) {
	entry, ok := components.Spatial.First(w)
	if !ok {
		return nil, false
	}
	spatial := components.Spatial.Get(entry)
	if spatial.Space == nil {
		return nil, false
	}
	return spatial, true
}

// clampToArena keeps a position inside the arena when one is loaded.
func clampToArena(w donburi.World, pos *gamemath.Vec3) {
	spatial, ok := spatialIndex(w)
	if !ok {
		return
	}
	pos.X, pos.Z = spatial.Clamp(pos.X, pos.Z)
}
