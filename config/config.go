package config

// FrameConfig contains frame-loop configuration values
type FrameConfig struct {
	MaxStep    float64 `yaml:"max_step"`    // seconds - rawDt is clamped to this before any system sees it
	AssumedFPS float64 `yaml:"assumed_fps"` // used to convert *_frames keys to seconds
}

// CombatantConfig contains per-class combatant values
type CombatantConfig struct {
	Radius         float64 `yaml:"radius"` // world units, used for the spatial index footprint
	StandardHealth int     `yaml:"standard_health"`
	HeavyHealth    int     `yaml:"heavy_health"`
	PlayerHealth   int     `yaml:"player_health"`
	BossHealth     int     `yaml:"boss_health"`
	MoveSpeed      float64 `yaml:"move_speed"` // units per second for commanded movement
	TurnSpeed      float64 `yaml:"turn_speed"` // radians per second
}

// MeleeConfig contains melee weapon values
type MeleeConfig struct {
	Damage         int     `yaml:"damage"`
	KnockbackForce float64 `yaml:"knockback_force"`
	Range          float64 `yaml:"range"`
	Cooldown       float64 `yaml:"cooldown"` // seconds
}

// RangedConfig contains ranged weapon and projectile values
type RangedConfig struct {
	Damage       int     `yaml:"damage"`
	Cooldown     float64 `yaml:"cooldown"`      // seconds
	Speed        float64 `yaml:"speed"`         // units per second
	Lifetime     float64 `yaml:"lifetime"`      // seconds
	HitRadius    float64 `yaml:"hit_radius"`    // sphere test radius
	ImpulseRatio float64 `yaml:"impulse_ratio"` // fraction of melee knockback force
}

// TargetingConfig contains target acquisition values
type TargetingConfig struct {
	AcquisitionRange float64 `yaml:"acquisition_range"`
	LockRange        float64 `yaml:"lock_range"`     // sticky lock retention distance
	ConeAngle        float64 `yaml:"cone_angle_deg"` // full cone angle, half of it either side of facing
	MinFacingDot     float64 `yaml:"min_facing_dot"` // melee candidates below this are rejected outright
	FacingWeight     float64 `yaml:"facing_weight"`  // score = facingDot*FacingWeight - distance/range
}

// KnockbackConfig contains knockback impulse values
type KnockbackConfig struct {
	UpwardBias           float64 `yaml:"upward_bias"`            // velocity.y = magnitude * UpwardBias
	HeavyLaunchThreshold float64 `yaml:"heavy_launch_threshold"` // minimum non-melee magnitude that ragdolls a HEAVY
}

// RagdollConfig contains the simplified ballistic integrator values
type RagdollConfig struct {
	Duration             float64 `yaml:"duration"` // seconds
	Gravity              float64 `yaml:"gravity"`
	GravityScale         float64 `yaml:"gravity_scale"`
	VelocityGravityScale float64 `yaml:"velocity_gravity_scale"` // environment-triggered launches fall harder
	FrictionPerSecond    float64 `yaml:"friction_per_second"`    // velocity *= FrictionPerSecond^dt
	ExitVelocity         float64 `yaml:"exit_velocity"`
	GroundY              float64 `yaml:"ground_y"`
}

// HitstopConfig contains the hit-stop automaton values. The *Frames fields,
// when positive, override the matching durations via Frame.AssumedFPS.
type HitstopConfig struct {
	BaseDuration   float64 `yaml:"base_duration"` // seconds at intensity 1
	RecoveryTime   float64 `yaml:"recovery_time"` // seconds
	BaseFrames     int     `yaml:"base_frames"`
	RecoveryFrames int     `yaml:"recovery_frames"`
	FreezeScale    float64 `yaml:"freeze_scale"`   // time scale held during FREEZE (0 = full stop)
	RecoveryCurve  string  `yaml:"recovery_curve"` // gween ease name
}

// SlowMotionConfig contains the continuous global freeze source values
type SlowMotionConfig struct {
	RecoverySpeed float64 `yaml:"recovery_speed"` // per-tick lerp factor toward the target factor
}

// DeathConfig contains values applied when a combatant dies
type DeathConfig struct {
	SlowFactor    float64 `yaml:"slow_factor"`
	SlowDuration  float64 `yaml:"slow_duration"` // seconds
	ShakeStrength float64 `yaml:"shake_strength"`
	ShakeDuration float64 `yaml:"shake_duration"`
}

// ShakeConfig contains screen shake oscillator values
type ShakeConfig struct {
	HitStrength     float64 `yaml:"hit_strength"`     // impulse at damage >= DamageReference
	HitDuration     float64 `yaml:"hit_duration"`     // seconds
	DamageReference float64 `yaml:"damage_reference"` // impulse scales by min(1, damage/DamageReference)
	Decay           float64 `yaml:"decay"`            // strength *= exp(-Decay*dt)
	BaseDuration    float64 `yaml:"base_duration"`    // envelope denominator
	Frequency       float64 `yaml:"frequency"`        // target resamples per second
	Smoothing       float64 `yaml:"smoothing"`        // per-60Hz-frame lerp factor
	MaxStrength     float64 `yaml:"max_strength"`
	Seed            int64   `yaml:"seed"`
}

// ComboConfig contains chaos/combo score values
type ComboConfig struct {
	DecayTime             float64 `yaml:"decay_time"` // seconds of grace after the last body lands
	PointsPerNpcPerSecond float64 `yaml:"points_per_npc_per_second"`
	BumpScale             float64 `yaml:"bump_scale"`    // cosmetic pulse peak
	BumpDuration          float64 `yaml:"bump_duration"` // seconds
}

// EffectsConfig contains client-side cosmetic timers
type EffectsConfig struct {
	HitFlash          float64 `yaml:"hit_flash"`           // seconds
	HealthBarDuration float64 `yaml:"health_bar_duration"` // seconds
}

// Tuning is the immutable configuration object consumed by the engine.
// Values are copied into the components that use them; swap the whole
// Tuning to reconfigure.
type Tuning struct {
	Frame      FrameConfig      `yaml:"frame"`
	Combatant  CombatantConfig  `yaml:"combatant"`
	Melee      MeleeConfig      `yaml:"melee"`
	Ranged     RangedConfig     `yaml:"ranged"`
	Targeting  TargetingConfig  `yaml:"targeting"`
	Knockback  KnockbackConfig  `yaml:"knockback"`
	Ragdoll    RagdollConfig    `yaml:"ragdoll"`
	Hitstop    HitstopConfig    `yaml:"hitstop"`
	SlowMotion SlowMotionConfig `yaml:"slow_motion"`
	Death      DeathConfig      `yaml:"death"`
	Shake      ShakeConfig      `yaml:"shake"`
	Combo      ComboConfig      `yaml:"combo"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Frame: FrameConfig{
			MaxStep:    0.1,
			AssumedFPS: 60,
		},
		Combatant: CombatantConfig{
			Radius:         0.5,
			StandardHealth: 100,
			HeavyHealth:    220,
			PlayerHealth:   150,
			BossHealth:     600,
			MoveSpeed:      6.0,
			TurnSpeed:      6.0,
		},
		Melee: MeleeConfig{
			Damage:         15,
			KnockbackForce: 25,
			Range:          2.5,
			Cooldown:       0.35,
		},
		Ranged: RangedConfig{
			Damage:       10,
			Cooldown:     0.6,
			Speed:        30,
			Lifetime:     1.5,
			HitRadius:    0.8,
			ImpulseRatio: 0.7,
		},
		Targeting: TargetingConfig{
			AcquisitionRange: 18,
			LockRange:        4,
			ConeAngle:        120,
			MinFacingDot:     0.25,
			FacingWeight:     2.0,
		},
		Knockback: KnockbackConfig{
			UpwardBias:           0.4,
			HeavyLaunchThreshold: 15,
		},
		Ragdoll: RagdollConfig{
			Duration:             2.0,
			Gravity:              9.81,
			GravityScale:         1.0,
			VelocityGravityScale: 1.6,
			FrictionPerSecond:    0.35,
			ExitVelocity:         1.0,
			GroundY:              0,
		},
		Hitstop: HitstopConfig{
			BaseDuration:  0.08,
			RecoveryTime:  0.12,
			FreezeScale:   0,
			RecoveryCurve: "in_quad",
		},
		SlowMotion: SlowMotionConfig{
			RecoverySpeed: 0.15,
		},
		Death: DeathConfig{
			SlowFactor:    0.25,
			SlowDuration:  1.2,
			ShakeStrength: 0.6,
			ShakeDuration: 0.4,
		},
		Shake: ShakeConfig{
			HitStrength:     0.35,
			HitDuration:     0.25,
			DamageReference: 30,
			Decay:           6.0,
			BaseDuration:    0.25,
			Frequency:       24,
			Smoothing:       0.5,
			MaxStrength:     2.0,
			Seed:            1,
		},
		Combo: ComboConfig{
			DecayTime:             3.0,
			PointsPerNpcPerSecond: 100,
			BumpScale:             1.35,
			BumpDuration:          0.2,
		},
		Effects: EffectsConfig{
			HitFlash:          0.05,
			HealthBarDuration: 3.0,
		},
	}
}

// HitstopDurations returns the freeze base and recovery durations in
// seconds, resolving frame-counted overrides.
func (t Tuning) HitstopDurations() (base, recovery float64) {
	base, recovery = t.Hitstop.BaseDuration, t.Hitstop.RecoveryTime
	if t.Hitstop.BaseFrames > 0 {
		base = t.FramesToSeconds(t.Hitstop.BaseFrames)
	}
	if t.Hitstop.RecoveryFrames > 0 {
		recovery = t.FramesToSeconds(t.Hitstop.RecoveryFrames)
	}
	return base, recovery
}

// FramesToSeconds converts a frame count at Frame.AssumedFPS to seconds.
func (t Tuning) FramesToSeconds(frames int) float64 {
	if t.Frame.AssumedFPS <= 0 {
		return 0
	}
	return float64(frames) / t.Frame.AssumedFPS
}

// Config holds general client configuration
type Config struct {
	Width  int
	Height int
}

// C is the client window configuration
var C = &Config{
	Width:  640,
	Height: 360,
}
