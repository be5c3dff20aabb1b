package archetypes

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Input,
		components.Weapon,
		components.HUD,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Health,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
		components.Arena,
	)
	// Match carries every per-match singleton.
	Match = newArchetype(
		components.Match,
		components.Spawner,
		components.Clock,
		components.Registry,
		components.Frame,
		components.Rand,
		components.Logger,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
