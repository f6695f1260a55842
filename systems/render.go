package systems

import (
	"image/color"

	"github.com/automoto/impact/assets"
	"github.com/automoto/impact/components"
	cfg "github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const discSize = 64

var (
	discImage *ebiten.Image
	shaderOp  = &ebiten.DrawRectShaderOptions{}
	drawOp    = &ebiten.DrawImageOptions{}

	arenaFloor  = color.RGBA{28, 30, 38, 255}
	arenaEdge   = color.RGBA{70, 74, 90, 255}
	hazardColor = color.RGBA{200, 80, 20, 110}
	shotColor   = color.RGBA{255, 230, 120, 255}
	lockColor   = color.RGBA{255, 255, 255, 200}
)

// view maps world XZ to screen pixels around the camera. Height lifts a
// point up the screen so launched bodies read as airborne.
type view struct {
	camX, camZ float64
	halfW      float64
	halfH      float64
	ppu        float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		camX:  camera.Position.X + camera.Shake.X,
		camZ:  camera.Position.Y + camera.Shake.Y,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
		ppu:   cfg.Display.PixelsPerUnit,
	}, true
}

func (v view) project(p gamemath.Vec3) (float32, float32) {
	x := (p.X-v.camX)*v.ppu + v.halfW
	y := (p.Z-v.camZ-p.Y)*v.ppu + v.halfH
	return float32(x), float32(y)
}

func (v view) scale(units float64) float32 {
	return float32(units * v.ppu)
}

// DrawArena renders the floor and any hazards.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.Black)
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	if spatial, ok := spatialIndex(ecs.World); ok && spatial.Width > 0 {
		x, y := v.project(gamemath.Vec3{})
		w, h := v.scale(spatial.Width), v.scale(spatial.Depth)
		vector.DrawFilledRect(screen, x, y, w, h, arenaFloor, false)
		vector.StrokeRect(screen, x, y, w, h, 2, arenaEdge, false)
	}

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hazard.Get(e)
		x, y := v.project(gamemath.Vec3{X: h.X, Z: h.Z})
		vector.DrawFilledRect(screen, x, y, v.scale(h.W), v.scale(h.D), hazardColor, false)
	})
}

// DrawCombatants renders every combatant as a shaded disc with a facing
// tick and a ground shadow.
func DrawCombatants(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	radius := tuning(ecs.World).Combatant.Radius

	for _, e := range combatantsByID(ecs.World) {
		pos := components.Transform.Get(e).Position
		cb := components.Combatant.Get(e)

		// Shadow stays on the floor.
		sx, sy := v.project(gamemath.Vec3{X: pos.X, Z: pos.Z})
		vector.DrawFilledCircle(screen, sx, sy, v.scale(radius)*0.8, color.RGBA{0, 0, 0, 90}, true)

		x, y := v.project(pos)
		size := v.scale(radius * 2)
		base := combatantColor(cb, Alive(e))
		flash := components.Flash.Get(e)
		drawDisc(screen, x, y, size, base, flash)

		if Alive(e) {
			facing := gamemath.FacingVector(cb.Facing)
			fx, fy := v.project(pos.Add(facing.Scale(radius * 1.4)))
			vector.StrokeLine(screen, x, y, fx, fy, 2, color.White, true)
		}
	}
}

func drawDisc(screen *ebiten.Image, x, y, size float32, base color.RGBA, flash *components.FlashData) {
	if discImage == nil {
		discImage = ebiten.NewImage(discSize, discSize)
		vector.DrawFilledCircle(discImage, discSize/2, discSize/2, discSize/2, color.White, true)
	}

	if assets.FlashShader == nil {
		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(float64(size)/discSize, float64(size)/discSize)
		drawOp.GeoM.Translate(float64(x-size/2), float64(y-size/2))
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleWithColor(base)
		screen.DrawImage(discImage, drawOp)
		return
	}

	amount := float32(0)
	if flash.Remaining > 0 {
		amount = 1
	}
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Scale(float64(size)/discSize, float64(size)/discSize)
	shaderOp.GeoM.Translate(float64(x-size/2), float64(y-size/2))
	shaderOp.ColorScale.Reset()
	shaderOp.ColorScale.ScaleWithColor(base)
	shaderOp.Images[0] = discImage
	shaderOp.Uniforms = map[string]any{
		"Flash":      amount,
		"FlashColor": []float32{float32(flash.R), float32(flash.G), float32(flash.B)},
	}
	screen.DrawRectShader(discSize, discSize, assets.FlashShader, shaderOp)
}

func combatantColor(cb *components.CombatantData, alive bool) color.RGBA {
	if !alive {
		return color.RGBA{80, 80, 80, 255}
	}
	switch {
	case cb.Kind == components.KindPlayer:
		return color.RGBA{70, 140, 255, 255}
	case cb.Kind == components.KindBoss:
		return color.RGBA{170, 60, 220, 255}
	case cb.Class == components.ClassHeavy:
		return color.RGBA{200, 120, 60, 255}
	}
	return color.RGBA{220, 70, 70, 255}
}

func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		x, y := v.project(components.Transform.Get(e).Position)
		vector.DrawFilledCircle(screen, x, y, 3, shotColor, true)
	})
}

// DrawHealthBars renders a bar over every recently damaged combatant.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	radius := tuning(ecs.World).Combatant.Radius

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		cur, max := Health(e)
		if max <= 0 {
			return
		}
		pos := components.Transform.Get(e).Position
		x, y := v.project(pos)
		w := v.scale(radius * 2.4)
		y -= v.scale(radius) + 8
		x -= w / 2

		vector.DrawFilledRect(screen, x, y, w, 3, color.RGBA{40, 40, 40, 255}, false)
		vector.DrawFilledRect(screen, x, y, w*float32(cur)/float32(max), 3, color.RGBA{40, 220, 40, 255}, false)
	})
}

// DrawTargetLock rings the player's locked target.
func DrawTargetLock(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	target, _, ok := CurrentTarget(player)
	if !ok {
		return
	}
	x, y := v.project(components.Transform.Get(target).Position)
	r := v.scale(tuning(ecs.World).Combatant.Radius) + 4
	vector.StrokeCircle(screen, x, y, r, 1.5, lockColor, true)
}
