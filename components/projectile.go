package components

import (
	"time"

	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	ID     uint64
	Origin gamemath.Vec3
	TTL    time.Duration
}

var Projectile = donburi.NewComponentType[ProjectileData]()
