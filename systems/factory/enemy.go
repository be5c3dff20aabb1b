package factory

import (
	"github.com/automoto/zstrike/archetypes"
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyStats are rolled by the spawn director and fixed for the agent's lifetime.
type EnemyStats struct {
	Health      int
	BaseSpeed   float64
	SpeedFactor float64
	BobSpeed    float64
	Danger      int
}

func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vec3, stats EnemyStats) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	regEntry := components.Registry.MustFirst(ecs.World)
	registry := components.Registry.Get(regEntry)
	id := registry.NextID()
	registry.Agents[id] = enemy.Entity()

	now := components.Clock.Get(components.Clock.MustFirst(ecs.World)).Now

	size := cfg.Enemy.HalfExtent * 2
	obj := newObject(ecs, pos.X, pos.Z, size, size, "character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:          id,
		State:       cfg.EnemyPursuing,
		BaseSpeed:   stats.BaseSpeed,
		SpeedFactor: stats.SpeedFactor,
		BobSpeed:    stats.BobSpeed,
		BobHeight:   cfg.Enemy.BobHeight,
		SpawnDanger: stats.Danger,
		SpawnedAt:   now,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Position:   pos,
		HalfHeight: cfg.Enemy.HalfHeight,
		HalfWidth:  cfg.Enemy.HalfExtent,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})
	components.Flash.SetValue(enemy, components.FlashData{})

	return enemy
}
