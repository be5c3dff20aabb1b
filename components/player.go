package components

import (
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData holds the camera orientation. Roll is locked.
type PlayerData struct {
	Yaw   float64
	Pitch float64
}

var Player = donburi.NewComponentType[PlayerData]()

// CameraPosition is the eye point used as the muzzle origin and the target agents chase.
func CameraPosition(body *BodyData, eyeHeight float64) gamemath.Vec3 {
	return body.Position.Add(gamemath.Vec3{Y: eyeHeight})
}
