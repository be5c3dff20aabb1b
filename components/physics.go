package components

import (
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid-body state the core issues commands against.
// Position is the body centre.
type BodyData struct {
	Position   gamemath.Vec3
	Velocity   gamemath.Vec3
	HalfHeight float64
	HalfWidth  float64
	Grounded   bool
}

var Body = donburi.NewComponentType[BodyData]()
