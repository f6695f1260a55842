package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// FlashShader tints a combatant disc toward its hit flash colour. It stays
// nil until LoadShaders succeeds; renderers fall back to a plain draw.
var FlashShader *ebiten.Shader

// LoadShaders compiles the Kage sources. It needs a running graphics driver,
// so the headless server never calls it.
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/flash.kage")
	if err != nil {
		return fmt.Errorf("read flash shader: %w", err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile flash shader: %w", err)
	}
	FlashShader = shader
	return nil
}
