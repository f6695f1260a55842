package systems

import (
	"math"

	"github.com/automoto/impact/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ticks cosmetic timers (hit flash, health bars) on raw time
// so they stay visible during a hit-stop.
func UpdateEffects(ecs *ecs.ECS) {
	dt := rawDelta(ecs.World)
	updateFlashEffects(ecs, dt)
	updateHealthBars(ecs, dt)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining = math.Max(flash.Remaining-dt, 0)
		}
	})
}

// updateHealthBars hides health bars whose time ran out
func updateHealthBars(ecs *ecs.ECS, dt float64) {
	var expired []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive -= dt
		if bar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		e.RemoveComponent(components.HealthBar)
	}
}
