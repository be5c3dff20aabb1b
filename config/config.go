package config

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; the core has no renderers of its own.
const Default ecs.LayerID = 0

// PlayerConfig contains all player locomotion configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed    float64 // Horizontal speed, units per second
	JumpVelocity float64 // Vertical velocity applied by a jump impulse

	// Look
	PointerSensitivity float64 // Radians per pointer pixel
	TouchSensitivity   float64 // Radians per touch pixel
	MaxPitch           float64 // Radians, symmetric clamp

	// Body
	EyeHeight  float64 // Camera offset above the body centre
	HalfHeight float64 // Capsule half height including the caps
	Radius     float64 // Capsule radius
	SpawnX     float64
	SpawnY     float64
	SpawnZ     float64
}

// WeaponConfig contains the rifle's cadence and ammunition values
type WeaponConfig struct {
	MagazineCapacity int
	FireInterval     time.Duration // Minimum time between two shots
	FiringDuration   time.Duration // Cosmetic Firing state length
	ReloadDuration   time.Duration
	MuzzleSpeed      float64 // Units per second
	ProjectileTTL    time.Duration
	ProjectileRadius float64

	// Cosmetic
	RecoilKick     float64 // Initial recoil offset after a shot
	RecoilRecovery time.Duration
}

// EnemyConfig contains per-agent behaviour values
type EnemyConfig struct {
	BaseSpeedMin    float64 // Speed before the danger factor, lower bound
	BaseSpeedJitter float64 // Added uniformly in [0, jitter)
	BobSpeedMin     float64
	BobSpeedJitter  float64
	BobHeight       float64

	MeleeRange     float64       // Horizontal distance at which pursuit turns into attack
	AttackCooldown time.Duration // Per agent, measured from its own last attack
	DamagePerHit   int           // Health removed from an agent by one projectile

	HalfExtent float64 // Half width of the agent's box collider
	HalfHeight float64

	HitFlash time.Duration // Cosmetic
}

// SpawnConfig contains the spawn director's difficulty curve
type SpawnConfig struct {
	BaseInterval time.Duration
	IntervalStep time.Duration // Subtracted per danger level
	MinInterval  time.Duration

	BaseCapacity     int
	CapacityPerLevel int

	BaseHealth     int
	HealthPerLevel float64 // Fractional; the sum is floored
	SpeedPerLevel  float64 // Speed factor = 1 + danger*SpeedPerLevel

	RingMinRadius  float64
	RingMaxRadius  float64
	Height         float64
	CenterOnPlayer bool // Ring centred on the player instead of the world origin
}

// MatchConfig contains scoring, health and difficulty clock values
type MatchConfig struct {
	StartHealth int
	MaxHealth   int

	HitScore  int // Non-lethal hit
	KillScore int

	BaseAttackDamage int // Damage per attack = base + danger level
	DangerPeriod     time.Duration
	ClockStep        time.Duration // Elapsed time advances in whole steps
}

// EffectsConfig contains purely cosmetic timings
type EffectsConfig struct {
	HitMarker    time.Duration
	DamageFlash  time.Duration
	KillFeedSize int
	KillFeedTTL  time.Duration
	KillMessages []string
}

// PhysicsConfig contains values for the stand-in physics collaborator
type PhysicsConfig struct {
	Gravity       float64
	GroundY       float64
	ArenaWidth    int
	ArenaDepth    int
	PixelsPerUnit float64 // Collision-space units per world unit
	CellSize      int     // Collision cell edge, in collision-space units
	SweepStep     float64 // Max distance between projectile sweep samples
	DefaultTick   int     // Ticks per second for hosts without vsync
}

// BotConfig holds tuning for the autopilot used by the headless runner
type BotConfig struct {
	EngageRange  float64 // Fire only at targets closer than this
	AimTolerance float64 // Radians of aim error accepted before firing
	RetreatRange float64 // Back-pedal when the nearest agent is closer
	TurnRate     float64 // Max radians turned per tick
}

// Global configuration instances
var Player PlayerConfig
var Weapon WeaponConfig
var Enemy EnemyConfig
var Spawn SpawnConfig
var Match MatchConfig
var Effects EffectsConfig
var Physics PhysicsConfig
var Bot BotConfig

func init() {
	Player = PlayerConfig{
		WalkSpeed:    5.0,
		JumpVelocity: 4.0,

		PointerSensitivity: 0.002,
		TouchSensitivity:   0.005,
		MaxPitch:           1.5707963267948966, // pi/2

		EyeHeight:  0.8,
		HalfHeight: 1.15, // 0.75 half segment + 0.4 cap
		Radius:     0.4,
		SpawnX:     0,
		SpawnY:     5,
		SpawnZ:     0,
	}

	Weapon = WeaponConfig{
		MagazineCapacity: 30,
		FireInterval:     150 * time.Millisecond,
		FiringDuration:   50 * time.Millisecond,
		ReloadDuration:   1500 * time.Millisecond,
		MuzzleSpeed:      70,
		ProjectileTTL:    1000 * time.Millisecond,
		ProjectileRadius: 0.06,

		RecoilKick:     0.1,
		RecoilRecovery: 300 * time.Millisecond,
	}

	Enemy = EnemyConfig{
		BaseSpeedMin:    1.5,
		BaseSpeedJitter: 1.0,
		BobSpeedMin:     8,
		BobSpeedJitter:  4,
		BobHeight:       0.1,

		MeleeRange:     1.2,
		AttackCooldown: 1200 * time.Millisecond,
		DamagePerHit:   1,

		HalfExtent: 0.4,
		HalfHeight: 0.95,

		HitFlash: 100 * time.Millisecond,
	}

	Spawn = SpawnConfig{
		BaseInterval: 3 * time.Second,
		IntervalStep: 200 * time.Millisecond,
		MinInterval:  500 * time.Millisecond,

		BaseCapacity:     5,
		CapacityPerLevel: 2,

		BaseHealth:     2,
		HealthPerLevel: 0.5,
		SpeedPerLevel:  0.1,

		RingMinRadius: 20,
		RingMaxRadius: 30,
		Height:        5,
	}

	Match = MatchConfig{
		StartHealth: 100,
		MaxHealth:   100,

		HitScore:  25,
		KillScore: 100,

		BaseAttackDamage: 5,
		DangerPeriod:     60 * time.Second,
		ClockStep:        time.Second,
	}

	Effects = EffectsConfig{
		HitMarker:    150 * time.Millisecond,
		DamageFlash:  200 * time.Millisecond,
		KillFeedSize: 3,
		KillFeedTTL:  3 * time.Second,
		KillMessages: []string{"TARGET NEUTRALIZED", "THREAT ELIMINATED", "CONFIRMED KILL"},
	}

	Physics = PhysicsConfig{
		Gravity:       9.81,
		GroundY:       0,
		ArenaWidth:    500,
		ArenaDepth:    500,
		PixelsPerUnit: 16,
		CellSize:      32,
		SweepStep:     0.25,
		DefaultTick:   60,
	}

	Bot = BotConfig{
		EngageRange:  45,
		AimTolerance: 0.04,
		RetreatRange: 4,
		TurnRate:     0.12,
	}
}
