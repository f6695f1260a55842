package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/impact/components"
	cfg "github.com/automoto/impact/config"
	"github.com/automoto/impact/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Random number generator for bot decision jitter.
// Uses fixed seed for deterministic replay support.
var rng = rand.New(rand.NewSource(42))

// UpdateBots writes intents for NPC and boss brains. It runs before
// UpdateCommands and uses the previous frame's effective delta, so bots
// think slower during slow motion and not at all during a hit-stop.
func UpdateBots(e *ecs.ECS) {
	dt := simDelta(e.World)

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		if !Alive(entry) || components.Ragdoll.Get(entry).Active {
			intent.Move = gamemath.Vec3{}
			return
		}

		bot := components.Bot.Get(entry)
		bot.DecisionTimer -= dt
		if bot.DecisionTimer > 0 {
			return
		}
		difficulty := cfg.BotFor(bot.Difficulty)
		bot.DecisionTimer = difficulty.ReactionDelay * (0.75 + 0.5*rng.Float64())

		decideBot(e, entry, bot, intent, difficulty)
	})
}

func decideBot(e *ecs.ECS, entry *donburi.Entry, bot *components.BotData, intent *components.IntentData,
	difficulty cfg.BotDifficultyConfig) {
	pos := components.Transform.Get(entry).Position
	target := nearestHostile(e.World, entry, difficulty.ChaseRange)
	if target == nil {
		bot.State = components.BotIdle
		intent.Move = gamemath.Vec3{}
		return
	}

	// The brain chooses its own target; attacks keep it through the sticky lock.
	lock := components.TargetLock.Get(entry)
	lock.Target = target

	offset := components.Transform.Get(target).Position.Sub(pos).Horizontal()
	dist := offset.Len()
	weapon := components.Weapon.Get(entry)
	hp := components.Health.Get(entry)
	healthRatio := gamemath.SafeDiv(float64(hp.Current), float64(hp.Max))

	switch {
	case healthRatio < difficulty.RetreatThreshold:
		bot.State = components.BotRetreat
		intent.Move = offset.Scale(-1)
		intent.Ranged = weapon.RangedCooldown <= 0 && dist > difficulty.StopDistance
	case dist > difficulty.RangedMinRange:
		bot.State = components.BotChase
		intent.Move = offset
		intent.Ranged = weapon.RangedCooldown <= 0 && rng.Float64() < 0.3
	case dist > difficulty.StopDistance:
		bot.State = components.BotChase
		intent.Move = offset
	default:
		bot.State = components.BotAttack
		intent.Move = gamemath.Vec3{}
		intent.Melee = weapon.MeleeCooldown <= 0
	}
}

// nearestHostile returns the closest targetable combatant, ties going to the
// lower ID.
func nearestHostile(w donburi.World, self *donburi.Entry, radius float64) *donburi.Entry {
	pos := components.Transform.Get(self).Position
	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, c := range CandidatesNear(w, pos, radius) {
		if !Targetable(self, c) {
			continue
		}
		if d := distanceXZ(pos, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
