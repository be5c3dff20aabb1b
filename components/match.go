package components

import (
	"time"

	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/invariant"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
// Other systems report hits, kills and attacks; only these methods fold them in.
type MatchData struct {
	ID     string
	State  cfg.MatchStateID
	Score  int
	Kills  int
	Health int
	Max    int

	Elapsed time.Duration // Whole seconds of Playing time
	accum   time.Duration // Sub-second remainder not yet folded into Elapsed
	Danger  int
}

var Match = donburi.NewComponentType[MatchData]()

func (m *MatchData) Playing() bool {
	return m.State == cfg.MatchStatePlaying
}

// AddHit scores a non-lethal hit.
func (m *MatchData) AddHit(points int) {
	if !m.Playing() {
		return
	}
	m.Score += points
}

// AddKill scores a kill.
func (m *MatchData) AddKill(points int) {
	if !m.Playing() {
		return
	}
	m.Score += points
	m.Kills++
}

// TakeDamage removes health, floored at zero. Reaching zero ends the match.
// It returns false when the damage was not applied.
func (m *MatchData) TakeDamage(amount int) bool {
	if !m.Playing() {
		return false
	}
	if !invariant.Check(amount >= 0, "negative attack damage", "amount", amount) {
		amount = 0
	}
	m.Health -= amount
	if m.Health <= 0 {
		m.Health = 0
		m.State = cfg.MatchStateEnded
	}
	return true
}

// Advance accumulates dt and moves Elapsed forward in whole steps. It reports
// whether the danger level changed.
func (m *MatchData) Advance(dt, step, period time.Duration) bool {
	if !m.Playing() || step <= 0 {
		return false
	}
	if !invariant.Check(dt >= 0, "negative frame time", "dt", dt) {
		dt = 0
	}
	m.accum += dt
	changed := false
	for m.accum >= step {
		m.accum -= step
		m.Elapsed += step
		d := gamemath.DangerLevel(m.Elapsed, period)
		if d != m.Danger {
			invariant.Check(d > m.Danger, "danger level decreased", "from", m.Danger, "to", d)
			m.Danger = d
			changed = true
		}
	}
	return changed
}

// Reset prepares the singleton for a new match.
func (m *MatchData) Reset(id string, health int) {
	*m = MatchData{
		ID:     id,
		State:  cfg.MatchStatePlaying,
		Health: health,
		Max:    health,
		Danger: 1,
	}
}
