package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/impact/assets"
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/fonts"
	"github.com/automoto/impact/scenes"
	"github.com/automoto/impact/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(arenaName string, tuning config.Tuning, watcher *config.Watcher) *Game {
	if err := fonts.LoadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	arena, err := assets.LoadArena(arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena %q: %v", arenaName, err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, arena, tuning, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arenaName := flag.String("arena", "arena", "embedded arena to load")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	flag.Parse()

	tuning := config.Default()
	var watcher *config.Watcher
	if *tuningPath != "" {
		t, err := config.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning = t
		if watcher, err = config.NewWatcher(*tuningPath); err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	res := config.Display.Resolutions[config.Display.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle("impact")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence; saved settings are applied by the arena scene
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*arenaName, tuning, watcher)); err != nil {
		log.Fatal(err)
	}
}
