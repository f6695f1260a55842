package archetypes

import (
	"github.com/automoto/impact/components"
	cfg "github.com/automoto/impact/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Combatant is the shared capability set of every damageable entity.
	// Spawners add tags.Player, tags.NPC or tags.Boss on top.
	Combatant = newArchetype(
		components.Combatant,
		components.Transform,
		components.Health,
		components.Physics,
		components.Ragdoll,
		components.TargetLock,
		components.Weapon,
		components.Intent,
		components.Object,
		components.Flash,
	)
	Projectile = newArchetype(
		components.Projectile,
		components.Transform,
	)
	Hazard = newArchetype(
		components.Hazard,
	)
	Spatial = newArchetype(
		components.Spatial,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Director = newArchetype(
		components.Director,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
