package config

// MatchStateID represents the current phase of a match.
type MatchStateID int

const (
	MatchStateMenu    MatchStateID = iota // Waiting for Start
	MatchStatePlaying                     // Active gameplay, clock running
	MatchStateEnded                       // Health reached zero, counters frozen
)

// EnemyStateID is the behavioural mode of an agent.
type EnemyStateID int

const (
	EnemyPursuing EnemyStateID = iota
	EnemyAttacking
	EnemyDead // Terminal
)

// WeaponStateID is the rifle's state. Firing is cosmetic and never gates a shot.
type WeaponStateID int

const (
	WeaponReady WeaponStateID = iota
	WeaponFiring
	WeaponReloading
)

var matchStateNames = map[MatchStateID]string{
	MatchStateMenu:    "menu",
	MatchStatePlaying: "playing",
	MatchStateEnded:   "ended",
}

var enemyStateNames = map[EnemyStateID]string{
	EnemyPursuing:  "pursuing",
	EnemyAttacking: "attacking",
	EnemyDead:      "dead",
}

var weaponStateNames = map[WeaponStateID]string{
	WeaponReady:     "ready",
	WeaponFiring:    "firing",
	WeaponReloading: "reloading",
}

func (s MatchStateID) String() string {
	if n, ok := matchStateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s EnemyStateID) String() string {
	if n, ok := enemyStateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s WeaponStateID) String() string {
	if n, ok := weaponStateNames[s]; ok {
		return n
	}
	return "unknown"
}
