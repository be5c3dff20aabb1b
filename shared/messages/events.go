package messages

// EntityKind distinguishes the two pooled entity families.
type EntityKind string

const (
	KindAgent      EntityKind = "agent"
	KindProjectile EntityKind = "projectile"
)

// DespawnReason says why an entity left the live set.
type DespawnReason string

const (
	ReasonKilled       DespawnReason = "killed"
	ReasonExpired      DespawnReason = "expired"
	ReasonConsumed     DespawnReason = "consumed"      // Projectile used up on an agent
	ReasonWorldContact DespawnReason = "world_contact" // Projectile hit static geometry
	ReasonCleared      DespawnReason = "cleared"       // Match restart
)

// ShotEvent is emitted for every projectile the weapon fires.
type ShotEvent struct {
	ProjectileID uint64
	Ammo         int
	X, Y, Z      float64
}

// ReloadEvent is emitted when a reload starts and again when it completes.
type ReloadEvent struct {
	Completed bool
	Ammo      int
}

// HitEvent is a projectile landing on a live agent.
type HitEvent struct {
	ProjectileID uint64
	AgentID      uint64
	Remaining    int // Agent health after the hit
	Lethal       bool
}

// KillEvent confirms an agent's death. Emitted exactly once per agent.
type KillEvent struct {
	AgentID uint64
	Message string // Kill-feed line
}

// AttackEvent is an agent landing a melee attack on the player.
type AttackEvent struct {
	AgentID uint64
	Damage  int
}

// SpawnEvent is emitted when the spawn director creates an agent.
type SpawnEvent struct {
	AgentID     uint64
	X, Y, Z     float64
	Health      int
	SpeedFactor float64
	Danger      int
}

// DespawnEvent is emitted when an agent or projectile is removed.
type DespawnEvent struct {
	Kind   EntityKind
	ID     uint64
	Reason DespawnReason
}

// MatchStarted is handed to the reporting collaborator when a match begins.
type MatchStarted struct {
	MatchID string `json:"match_id"`
}

// MatchResult is the payload handed to the reporting collaborator at the end of a match.
type MatchResult struct {
	MatchID         string  `json:"match_id"`
	Score           int     `json:"score"`
	Kills           int     `json:"kills"`
	SurvivalSeconds float64 `json:"survival_time"`
}

// FrameEvents collects everything observable that happened during one tick.
// Score, Health and Danger hold the new value when the matching Changed flag is set.
type FrameEvents struct {
	Tick    uint64
	MatchID string

	Shots    []ShotEvent
	Reloads  []ReloadEvent
	Hits     []HitEvent
	Kills    []KillEvent
	Attacks  []AttackEvent
	Spawns   []SpawnEvent
	Despawns []DespawnEvent

	ScoreChanged  bool
	Score         int
	HealthChanged bool
	Health        int
	DangerChanged bool
	Danger        int

	Started *MatchStarted
	Ended   *MatchResult
}

// Empty reports whether nothing was recorded.
func (f *FrameEvents) Empty() bool {
	return len(f.Shots) == 0 && len(f.Reloads) == 0 && len(f.Hits) == 0 &&
		len(f.Kills) == 0 && len(f.Attacks) == 0 && len(f.Spawns) == 0 &&
		len(f.Despawns) == 0 && !f.ScoreChanged && !f.HealthChanged &&
		!f.DangerChanged && f.Started == nil && f.Ended == nil
}
