package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/impact/assets"
	cfg "github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/leveldata"
	"github.com/automoto/impact/systems"
	"github.com/automoto/impact/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one arena under the combat engine. The reset action
// rebuilds it from scratch.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arena        *leveldata.Arena
	tuning       cfg.Tuning
	watcher      *cfg.Watcher
	once         sync.Once
}

// NewArenaScene creates an arena scene. watcher may be nil.
func NewArenaScene(sc SceneChanger, arena *leveldata.Arena, tuning cfg.Tuning, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		arena:        arena,
		tuning:       tuning,
		watcher:      watcher,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.applyTuningUpdates()

	systems.Frame(as.ecs, 1/float64(ebiten.TPS()))

	if systems.ResetRequested(as.ecs) {
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.arena, as.tuning, as.watcher))
	}
}

// applyTuningUpdates swaps in a reloaded tuning between frames.
func (as *ArenaScene) applyTuningUpdates() {
	if as.watcher == nil {
		return
	}
	select {
	case t := <-as.watcher.Updates:
		as.tuning = t
		systems.ApplyTuning(as.ecs.World, t)
		log.Printf("Tuning reloaded")
	case err := <-as.watcher.Errors:
		log.Printf("Warning: tuning reload failed, keeping previous values: %v", err)
	default:
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: shaders unavailable, drawing without hit flash: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Client input writes intents before the engine's first system runs.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayerIntent)
	e.AddSystem(systems.UpdateSettingsToggles)
	systems.Install(e)

	e.AddRenderer(cfg.LayerDefault, systems.DrawArena)
	e.AddRenderer(cfg.LayerDefault, systems.DrawCombatants)
	e.AddRenderer(cfg.LayerDefault, systems.DrawProjectiles)
	e.AddRenderer(cfg.LayerDefault, systems.DrawHealthBars)
	e.AddRenderer(cfg.LayerDefault, systems.DrawTargetLock)
	e.AddRenderer(cfg.LayerDefault, systems.DrawHUD)
	e.AddRenderer(cfg.LayerDefault, systems.DrawDebug)

	as.ecs = e

	factory.CreateDirector(e, as.tuning)
	factory.CreateArena(e, as.arena)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e.World, saved)
	}
}
