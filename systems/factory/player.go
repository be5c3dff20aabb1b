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

func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2
	obj := newObject(ecs, spawn.X, spawn.Z, size, size, "character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Body.SetValue(player, components.BodyData{
		Position:   spawn,
		HalfHeight: cfg.Player.HalfHeight,
		HalfWidth:  cfg.Player.Radius,
	})
	components.Player.SetValue(player, components.PlayerData{})
	components.Weapon.SetValue(player, components.WeaponData{
		State:    cfg.WeaponReady,
		Ammo:     cfg.Weapon.MagazineCapacity,
		Capacity: cfg.Weapon.MagazineCapacity,
	})

	return player
}
