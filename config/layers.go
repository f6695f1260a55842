package config

import "github.com/yohamta/donburi/ecs"

// LayerDefault is the single render layer used by the arena client.
const LayerDefault ecs.LayerID = iota
