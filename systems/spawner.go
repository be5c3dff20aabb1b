package systems

import (
	"math"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/invariant"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner is the only path that creates agents. It spawns at most one
// per tick, once the interval has elapsed and the population is under capacity.
func UpdateSpawner(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	spawner := components.Spawner.Get(matchEntry)
	clock := components.Clock.Get(matchEntry)
	rng := components.Rand.Get(matchEntry)

	danger := match.Danger
	interval := gamemath.SpawnInterval(danger, cfg.Spawn.BaseInterval, cfg.Spawn.IntervalStep, cfg.Spawn.MinInterval)
	capacity := gamemath.SpawnCapacity(danger, cfg.Spawn.BaseCapacity, cfg.Spawn.CapacityPerLevel)

	if clock.Now-spawner.LastSpawn < interval || spawner.Live >= capacity {
		return
	}

	var center gamemath.Vec3
	if cfg.Spawn.CenterOnPlayer {
		if p, ok := GetPlayer(ecs.World); ok {
			center = components.Body.Get(p).Position
		}
	}
	angle := rng.Float64() * 2 * math.Pi
	radius := cfg.Spawn.RingMinRadius + rng.Float64()*(cfg.Spawn.RingMaxRadius-cfg.Spawn.RingMinRadius)
	pos := gamemath.RingPoint(center, radius, angle, cfg.Spawn.Height)

	stats := factory.EnemyStats{
		Health:      gamemath.AgentHealth(danger, cfg.Spawn.BaseHealth, cfg.Spawn.HealthPerLevel),
		BaseSpeed:   cfg.Enemy.BaseSpeedMin + rng.Float64()*cfg.Enemy.BaseSpeedJitter,
		SpeedFactor: gamemath.AgentSpeedFactor(danger, cfg.Spawn.SpeedPerLevel),
		BobSpeed:    cfg.Enemy.BobSpeedMin + rng.Float64()*cfg.Enemy.BobSpeedJitter,
		Danger:      danger,
	}
	agent := factory.CreateEnemy(ecs, pos, stats)
	id := components.Enemy.Get(agent).ID

	spawner.Live++
	spawner.LastSpawn = clock.Now
	invariant.Check(spawner.Live <= capacity, "live agents over capacity", "live", spawner.Live, "capacity", capacity)

	frame := components.Frame.Get(matchEntry)
	frame.Spawns = append(frame.Spawns, messages.SpawnEvent{
		AgentID:     id,
		X:           pos.X,
		Y:           pos.Y,
		Z:           pos.Z,
		Health:      stats.Health,
		SpeedFactor: stats.SpeedFactor,
		Danger:      danger,
	})
	logOf(ecs.World).Debug("agent spawned", "agent", id, "danger", danger, "health", stats.Health, "live", spawner.Live)
}
