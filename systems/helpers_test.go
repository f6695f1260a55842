package systems

import (
	"math"
	"testing"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameDt = 1.0 / 60

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateDirector(e, config.Default())
	factory.CreateSpace(e, 0, 0)
	return e
}

// spawnDummy creates a combatant with no brain attached.
func spawnDummy(e *ecs.ECS, kind components.Kind, class components.Class, team int, pos gamemath.Vec3) *donburi.Entry {
	c := factory.CreateCombatant(e, factory.CombatantSpec{
		Kind:     kind,
		Class:    class,
		Team:     team,
		Position: pos,
	})
	if c.HasComponent(components.Bot) {
		donburi.Remove[components.BotData](c, components.Bot)
	}
	return c
}

func spawnPlayer(e *ecs.ECS) *donburi.Entry {
	return spawnDummy(e, components.KindPlayer, components.ClassStandard, 0, gamemath.Vec3{})
}

func spawnNPC(e *ecs.ECS, class components.Class, x, z float64) *donburi.Entry {
	return spawnDummy(e, components.KindNPC, class, 1, gamemath.Vec3{X: x, Z: z})
}

// tickTime advances the time stack by one frame without running any other
// system, so simulation systems can be driven one at a time.
func tickTime(e *ecs.ECS, dt float64) {
	d := GetOrCreateDirector(e.World)
	d.RawDelta = dt
	UpdateTimeDilation(e)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func health(e *donburi.Entry) int {
	cur, _ := Health(e)
	return cur
}
