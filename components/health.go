package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Dead reports whether the health pool is exhausted.
func (h *HealthData) Dead() bool { return h.Current <= 0 }

type HealthBarData struct {
	// TimeToLive is the number of seconds the health bar should be visible.
	TimeToLive float64
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
