package factory

import (
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/zstrike/archetypes"
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the per-match singletons in the Playing state.
func CreateMatch(ecs *ecs.ECS, id string, rng *rand.Rand, log *slog.Logger) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	m := components.Match.Get(match)
	m.Reset(id, cfg.Match.StartHealth)

	components.Spawner.SetValue(match, components.SpawnerData{})
	components.Clock.SetValue(match, components.ClockData{})
	components.Registry.SetValue(match, components.NewRegistry())
	components.Frame.SetValue(match, messages.FrameEvents{MatchID: id})
	components.Rand.SetValue(match, components.RandData{Rand: rng})
	components.Logger.SetValue(match, components.LoggerData{Logger: log.With("match", id)})

	return match
}
