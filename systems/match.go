package systems

import (
	"log/slog"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch advances the survival clock in whole seconds and recomputes
// the danger level.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	clock := components.Clock.Get(matchEntry)

	if match.Advance(clock.Delta, cfg.Match.ClockStep, cfg.Match.DangerPeriod) {
		frame := components.Frame.Get(matchEntry)
		frame.DangerChanged = true
		frame.Danger = match.Danger
		logOf(e.World).Info("danger level raised", "danger", match.Danger, "elapsed", match.Elapsed)
	}
}

// WithPlayingCheck wraps a system to skip execution unless the match is in
// the Playing phase. Systems after a lethal attack see Ended and stop.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchPlaying(e.World) {
			return
		}
		system(e)
	}
}

// IsMatchPlaying returns true if the match is active.
func IsMatchPlaying(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).Playing()
}

// GetMatch returns the match singleton, or nil before the first Start.
func GetMatch(w donburi.World) *components.MatchData {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(matchEntry)
}

// MatchResult summarizes a match for external reporting.
func MatchResult(m *components.MatchData) messages.MatchResult {
	return messages.MatchResult{
		MatchID:         m.ID,
		Score:           m.Score,
		Kills:           m.Kills,
		SurvivalSeconds: m.Elapsed.Seconds(),
	}
}

// DangerProgress is how far the clock is through the current danger level, in [0,1).
func DangerProgress(m *components.MatchData) float64 {
	return gamemath.DangerProgress(m.Elapsed, cfg.Match.DangerPeriod)
}

func frameOf(w donburi.World) *messages.FrameEvents {
	return components.Frame.Get(components.Frame.MustFirst(w))
}

func clockOf(w donburi.World) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(w))
}

func registryOf(w donburi.World) *components.RegistryData {
	return components.Registry.Get(components.Registry.MustFirst(w))
}

func logOf(w donburi.World) *slog.Logger {
	if e, ok := components.Logger.First(w); ok {
		if l := components.Logger.Get(e); l.Logger != nil {
			return l.Logger
		}
	}
	return slog.Default()
}
