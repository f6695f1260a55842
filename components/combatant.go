package components

import (
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Kind selects how a combatant is driven. Every damageable entity carries the
// same component set; Kind only changes who issues its intents.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindBoss:
		return "boss"
	}
	return "unknown"
}

// Class is the combat weight class.
type Class int

const (
	ClassStandard Class = iota
	ClassHeavy // immune to melee knockback
)

func (c Class) String() string {
	if c == ClassHeavy {
		return "heavy"
	}
	return "standard"
}

type CombatantData struct {
	ID     int // stable scan order for target tie-breaks
	Kind   Kind
	Class  Class
	Team   int
	Facing float64 // radians, 0 faces +Z
	Active bool    // false removes it from targeting without killing it
}

var Combatant = donburi.NewComponentType[CombatantData]()

type TransformData struct {
	Position gamemath.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
