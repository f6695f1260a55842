package components

import (
	"github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/combo"
	"github.com/automoto/impact/shared/shake"
	"github.com/automoto/impact/shared/timescale"
	"github.com/yohamta/donburi"
)

// DirectorData is the singleton that owns the process-wide feedback state.
type DirectorData struct {
	Tuning config.Tuning
	Time   *timescale.Stack
	Shake  *shake.Oscillator
	Combo  *combo.Tracker

	RawDelta float64
	Now      float64 // raw clock
	SimTime  float64 // effective clock
	Frame    uint64

	// LastDeath is retained until a replay collaborator consumes it.
	LastDeath *HitEvent
}

var Director = donburi.NewComponentType[DirectorData]()
