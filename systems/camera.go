package systems

import (
	"github.com/automoto/impact/components"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player on raw time so the view keeps tracking
// during a freeze. The shake offset is applied at draw time.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, keep the last framing
	}
	pos := components.Transform.Get(playerEntry).Position

	targetX, targetZ := pos.X, pos.Z
	if spatial, ok := spatialIndex(e.World); ok {
		targetX, targetZ = spatial.Clamp(targetX, targetZ)
	}

	k := gamemath.SmoothingFactor(config.Display.CameraSmoothing, rawDelta(e.World))
	camera.Position.X += (targetX - camera.Position.X) * k
	camera.Position.Y += (targetZ - camera.Position.Y) * k
}
