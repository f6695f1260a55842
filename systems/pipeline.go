package systems

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Install registers the engine systems in frame order:
//  1. input-driven hit resolution
//  2. time dilation finalisation
//  3. simulation on the effective delta
//  4. combo sampling
//  5. raw-time presentation, then event delivery
//
// Input systems that write intents must be added before Install.
func Install(e *ecs.ECS) {
	e.AddSystem(UpdateBots)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateProjectileHits)
	e.AddSystem(UpdateCommands)

	e.AddSystem(UpdateTimeDilation)

	e.AddSystem(UpdateCooldowns)
	e.AddSystem(UpdateMovement)
	e.AddSystem(UpdateRagdolls)
	e.AddSystem(UpdateProjectiles)
	e.AddSystem(UpdateHazards)
	e.AddSystem(UpdateSpatialIndex)

	e.AddSystem(UpdateCombo)

	e.AddSystem(UpdateScreenShake)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateEvents)
}

// Frame runs one frame. rawDt is sanitised and clamped to the configured
// max step before any system sees it.
func Frame(e *ecs.ECS, rawDt float64) {
	d := GetOrCreateDirector(e.World)
	dt := gamemath.SanitizeDelta(rawDt)
	if step := d.Tuning.Frame.MaxStep; step > 0 && dt > step {
		dt = step
	}
	d.RawDelta = dt
	d.Frame++
	e.Update()
}
