package components

import (
	cfg "github.com/automoto/impact/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Stick is the left analog stick past the deadzone, zero otherwise.
	StickX, StickY float64
}

var Input = donburi.NewComponentType[InputData]()

// SettingsData holds client display settings. It is persisted between runs
// and never read by the simulation.
type SettingsData struct {
	Debug           bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
