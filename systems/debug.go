package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/impact/components"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the spatial index objects and prints the time-dilation
// state. Toggled with the debug action.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs.World)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if spatial, found := spatialIndex(ecs.World); ok && found {
		for _, obj := range spatial.Space.Objects() {
			// Space units back to world units.
			wx := obj.X/spatial.Scale - spatial.OriginX
			wz := obj.Y/spatial.Scale - spatial.OriginZ
			x, y := v.project(gamemath.Vec3{X: wx, Z: wz})
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvProbe) {
				c = color.RGBA{255, 255, 0, 255}
			}
			vector.StrokeRect(screen, x, y, float32(obj.W/spatial.Scale*v.ppu), float32(obj.H/spatial.Scale*v.ppu), 1, c, false)
		}
	}

	d := GetOrCreateDirector(ecs.World)
	hitstop := d.Time.Hitstop()
	freeze := d.Time.GlobalFreeze()
	lines := fmt.Sprintf("FPS %.0f  frame %d\nscale %.2f  raw %.4f  eff %.4f\nhitstop %s  freeze %.2f (%.2fs)\nshake %.3f",
		ebiten.ActualFPS(), d.Frame,
		d.Time.EffectiveScale(), d.RawDelta, d.Time.EffectiveDelta(),
		hitstop.Phase(), freeze.Factor(), freeze.Remaining(),
		d.Shake.Strength())

	airborne := 0
	for e := range components.Ragdoll.Iter(ecs.World) {
		if components.Ragdoll.Get(e).Active {
			airborne++
		}
	}
	lines += fmt.Sprintf("\nairborne %d", airborne)

	ebitenutil.DebugPrintAt(screen, lines, 10, screen.Bounds().Dy()-80)
}
