package components

import (
	"github.com/automoto/impact/config"
	"github.com/yohamta/donburi"
)

// BotState is the current high-level decision of an NPC brain.
type BotState int

const (
	BotIdle BotState = iota
	BotChase
	BotAttack
	BotRetreat
)

func (s BotState) String() string {
	switch s {
	case BotIdle:
		return "idle"
	case BotChase:
		return "chase"
	case BotAttack:
		return "attack"
	case BotRetreat:
		return "retreat"
	}
	return "unknown"
}

type BotData struct {
	Difficulty    config.BotDifficulty
	State         BotState
	DecisionTimer float64 // seconds until the next decision
}

var Bot = donburi.NewComponentType[BotData]()
