package factory

import (
	"math"

	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/shared/leveldata"
	"github.com/automoto/impact/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const degToRad = math.Pi / 180

// CreateArena spawns the spatial index, camera, combatants and hazards of a
// loaded arena. It returns the spawned combatants in spawn order.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) []*donburi.Entry {
	CreateSpace(ecs, arena.Width, arena.Depth)
	CreateCamera(ecs, arena.Width/2, arena.Depth/2)

	spawned := CreateCombatants(ecs, arena)
	for _, h := range arena.Hazards {
		CreateHazard(ecs, h)
	}
	return spawned
}

// CreateCombatants spawns the arena's combatants in file order.
func CreateCombatants(ecs *ecs.ECS, arena *leveldata.Arena) []*donburi.Entry {
	spawned := make([]*donburi.Entry, 0, len(arena.Combatants))
	for _, s := range arena.Combatants {
		spawned = append(spawned, CreateCombatant(ecs, CombatantSpec{
			Kind:     parseKind(s.Kind),
			Class:    parseClass(s.Class),
			Team:     s.Team,
			Position: gamemath.Vec3{X: s.X, Z: s.Z},
			Facing:   s.FacingDeg * degToRad,
		}))
	}
	return spawned
}

func CreateHazard(ecs *ecs.ECS, h leveldata.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs, tags.Hazard)
	components.Hazard.SetValue(hazard, components.HazardData{
		Hazard: h,
		Timer:  h.Interval,
	})
	return hazard
}

func parseKind(s string) components.Kind {
	switch s {
	case "player":
		return components.KindPlayer
	case "boss":
		return components.KindBoss
	}
	return components.KindNPC
}

func parseClass(s string) components.Class {
	if s == "heavy" {
		return components.ClassHeavy
	}
	return components.ClassStandard
}
