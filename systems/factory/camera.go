package factory

import (
	"github.com/automoto/impact/archetypes"
	"github.com/automoto/impact/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, z float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.Vec2{X: x, Y: z}})
}
