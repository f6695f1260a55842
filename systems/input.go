package systems

import (
	"github.com/automoto/impact/components"
	cfg "github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/automoto/impact/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdatePlayerIntent in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.StickX, input.StickY = analogStick(gamepadIDs)
}

// analogStick returns the first left stick outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (x, y float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return h, v
		}
	}
	return 0, 0
}

// UpdatePlayerIntent turns the polled input into the player's intent.
// Screen down is world +Z, matching the arena's TMX layout.
func UpdatePlayerIntent(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	intent := components.Intent.Get(entry)

	move := gamemath.Vec3{X: input.StickX, Z: input.StickY}
	if move.IsZero() {
		if input.Current[cfg.ActionMoveLeft] {
			move.X--
		}
		if input.Current[cfg.ActionMoveRight] {
			move.X++
		}
		if input.Current[cfg.ActionMoveUp] {
			move.Z--
		}
		if input.Current[cfg.ActionMoveDown] {
			move.Z++
		}
	}
	intent.Move = move

	if GetAction(input, cfg.ActionMelee).JustPressed {
		intent.Melee = true
	}
	if GetAction(input, cfg.ActionRanged).JustPressed {
		intent.Ranged = true
	}
	switch {
	case GetAction(input, cfg.ActionTargetNext).JustPressed:
		intent.Switch = 1
	case GetAction(input, cfg.ActionTargetPrev).JustPressed:
		intent.Switch = -1
	}
}

// UpdateSettingsToggles handles the debug overlay and resolution keys and
// persists any change.
func UpdateSettingsToggles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs.World)

	changed := false
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionResolution).JustPressed {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Display.Resolutions)
		res := cfg.Display.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
		changed = true
	}
	if changed {
		SaveCurrentSettings(settings)
	}
}

// ResetRequested reports whether the reset action was pressed this frame.
func ResetRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionReset).JustPressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetOrCreateSettings returns the client settings singleton.
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ResolutionIndex: cfg.Display.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
