package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/impact/fonts"
	"github.com/automoto/impact/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders the player's health bar, the chaos combo readout and the
// locked target distance.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cur, max := Health(playerEntry)

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	if max > 0 {
		ratio := float32(cur) / float32(max)
		vector.DrawFilledRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)
	}

	if _, dist, ok := CurrentTarget(playerEntry); ok {
		drawHUDText(screen, fmt.Sprintf("target %.1fm", dist), fonts.Small,
			hudMargin, hudMargin+hudBarHeight+4, 1, color.White)
	}

	drawCombo(ecs, screen)
}

// drawCombo shows the multiplier at the top right, pulsed by the bump scale.
func drawCombo(ecs *ecs.ECS, screen *ebiten.Image) {
	state := ComboState(ecs.World)
	width := float64(screen.Bounds().Dx())

	drawHUDText(screen, fmt.Sprintf("%.0f", state.TotalScore), fonts.Regular,
		width-hudMargin-80, hudMargin, 1, color.RGBA{200, 200, 200, 255})
	if state.Multiplier <= 0 {
		return
	}
	drawHUDText(screen, fmt.Sprintf("x%d", state.Multiplier), fonts.Title,
		width-hudMargin-80, hudMargin+16, ComboBumpScale(ecs.World), color.RGBA{255, 210, 60, 255})
}

func drawHUDText(screen *ebiten.Image, s string, font fonts.FontName, x, y, scale float64, c color.Color) {
	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Scale(scale, scale)
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, font.Get(), hudTextOp)
}
