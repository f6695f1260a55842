package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for NPC brains at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // seconds between decisions
	ChaseRange       float64 // world units, hostiles beyond this are ignored
	StopDistance     float64 // stop walking when this close to the target
	RangedMinRange   float64 // prefer ranged attacks beyond this distance
	RetreatThreshold float64 // health fraction at which the bot backs off
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    0.5,
				ChaseRange:       10,
				StopDistance:     1.8,
				RangedMinRange:   7,
				RetreatThreshold: 0.2, // Retreat at 20% health
			},
			BotDifficultyNormal: {
				ReactionDelay:    0.25,
				ChaseRange:       14,
				StopDistance:     1.6,
				RangedMinRange:   6,
				RetreatThreshold: 0.3, // Retreat at 30% health
			},
			BotDifficultyHard: {
				ReactionDelay:    0.08, // Near-instant reaction
				ChaseRange:       18,
				StopDistance:     1.4,
				RangedMinRange:   5,
				RetreatThreshold: 0.15, // Retreat at 15% health
			},
		},
	}
}

// BotFor returns the difficulty config, falling back to normal.
func BotFor(d BotDifficulty) BotDifficultyConfig {
	if c, ok := Bot.Difficulties[d]; ok {
		return c
	}
	return Bot.Difficulties[BotDifficultyNormal]
}
