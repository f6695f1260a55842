package systems

import (
	"github.com/automoto/impact/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ComboChange is published whenever the combo multiplier changes. Bumped
// marks an increase and is cosmetic only.
type ComboChange struct {
	Multiplier int
	TotalScore float64
	Bumped     bool
}

var (
	// HitOccurred carries every hit and swing.
	HitOccurred = events.NewEventType[components.HitEvent]()
	// DeathOccurred fires exactly once per death.
	DeathOccurred = events.NewEventType[components.HitEvent]()
	ComboChanged  = events.NewEventType[ComboChange]()
)

// UpdateEvents delivers this frame's queued events to subscribers. It runs
// last so collaborators see the frame's final state.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func OnHit(w donburi.World, fn func(donburi.World, components.HitEvent)) {
	HitOccurred.Subscribe(w, fn)
}

func OnDeath(w donburi.World, fn func(donburi.World, components.HitEvent)) {
	DeathOccurred.Subscribe(w, fn)
}

func OnComboChanged(w donburi.World, fn func(donburi.World, ComboChange)) {
	ComboChanged.Subscribe(w, fn)
}
