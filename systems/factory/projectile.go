package factory

import (
	"github.com/automoto/zstrike/archetypes"
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateProjectile(ecs *ecs.ECS, origin, velocity gamemath.Vec3) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	registry := components.Registry.Get(components.Registry.MustFirst(ecs.World))
	id := registry.NextID()
	registry.Projectiles[id] = projectile.Entity()

	components.Projectile.SetValue(projectile, components.ProjectileData{
		ID:     id,
		Origin: origin,
		TTL:    cfg.Weapon.ProjectileTTL,
	})
	components.Body.SetValue(projectile, components.BodyData{
		Position:   origin,
		Velocity:   velocity,
		HalfHeight: cfg.Weapon.ProjectileRadius,
		HalfWidth:  cfg.Weapon.ProjectileRadius,
	})

	return projectile
}
