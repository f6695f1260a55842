package factory

import (
	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CombatantSpec describes a combatant to spawn.
type CombatantSpec struct {
	Kind     components.Kind
	Class    components.Class
	Team     int
	Position gamemath.Vec3
	Facing   float64 // radians
	Health   int     // 0 picks the tuning default for Kind and Class
}

func CreateCombatant(ecs *ecs.ECS, spec CombatantSpec) *donburi.Entry {
	t := directorTuning(ecs.World)

	var tag donburi.IComponentType
	switch spec.Kind {
	case components.KindPlayer:
		tag = tags.Player
	case components.KindBoss:
		tag = tags.Boss
	default:
		tag = tags.NPC
	}

	combatant := archetypes.Combatant.Spawn(ecs, tag)

	components.Combatant.SetValue(combatant, components.CombatantData{
		ID:     nextCombatantID(ecs.World),
		Kind:   spec.Kind,
		Class:  spec.Class,
		Team:   spec.Team,
		Facing: gamemath.WrapAngle(spec.Facing),
		Active: true,
	})
	components.Transform.SetValue(combatant, components.TransformData{Position: spec.Position})

	health := spec.Health
	if health <= 0 {
		health = defaultHealth(t, spec.Kind, spec.Class)
	}
	components.Health.SetValue(combatant, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Physics.SetValue(combatant, components.PhysicsData{Grounded: true})
	components.Ragdoll.SetValue(combatant, components.RagdollData{GravityScale: t.Ragdoll.GravityScale})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(combatant, components.FlashData{R: 1, G: 1, B: 1})

	if spec.Kind != components.KindPlayer {
		difficulty := config.BotDifficultyNormal
		if spec.Kind == components.KindBoss {
			difficulty = config.BotDifficultyHard
		}
		donburi.Add(combatant, components.Bot, &components.BotData{Difficulty: difficulty})
	}

	attachObject(ecs.World, combatant, t.Combatant.Radius)
	return combatant
}

// attachObject gives the combatant a footprint in the spatial index.
func attachObject(w donburi.World, combatant *donburi.Entry, radius float64) {
	spaceEntry, ok := components.Spatial.First(w)
	if !ok {
		return
	}
	spatial := components.Spatial.Get(spaceEntry)
	size := 2 * radius * spatial.Scale
	pos := components.Transform.Get(combatant).Position
	x, z := spatial.ToSpace(pos.X, pos.Z)

	obj := resolv.NewObject(x-size/2, z-size/2, size, size, tags.ResolvCombatant)
	obj.Data = combatant
	spatial.Space.Add(obj)
	components.Object.SetValue(combatant, components.ObjectData{Object: obj})
}

func defaultHealth(t config.Tuning, kind components.Kind, class components.Class) int {
	switch {
	case kind == components.KindPlayer:
		return t.Combatant.PlayerHealth
	case kind == components.KindBoss:
		return t.Combatant.BossHealth
	case class == components.ClassHeavy:
		return t.Combatant.HeavyHealth
	}
	return t.Combatant.StandardHealth
}

func nextCombatantID(w donburi.World) int {
	next := 1
	for e := range components.Combatant.Iter(w) {
		if id := components.Combatant.Get(e).ID; id >= next {
			next = id + 1
		}
	}
	return next
}
