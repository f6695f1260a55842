package components

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2     // top-down XZ focus
	Shake    gamemath.Vec3 // offset applied on top of Position when drawing
}

var Camera = donburi.NewComponentType[CameraData]()
