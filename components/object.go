package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint in the collision space. The space is
// a top-down XZ grid, so Object.X/Y map to world X/Z.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// ArenaData maps world XZ into the collision space. resolv works in whole
// pixels, so world units are scaled by Scale and shifted by half the arena
// to keep every object at least one pixel wide and on positive coordinates.
type ArenaData struct {
	Width, Depth float64
	Scale        float64
}

var Arena = donburi.NewComponentType[ArenaData]()

// ToSpace converts a world XZ point to collision-space coordinates.
func (a *ArenaData) ToSpace(x, z float64) (float64, float64) {
	return (x + a.Width/2) * a.scale(), (z + a.Depth/2) * a.scale()
}

// FromSpace converts collision-space coordinates back to world XZ.
func (a *ArenaData) FromSpace(sx, sy float64) (float64, float64) {
	return sx/a.scale() - a.Width/2, sy/a.scale() - a.Depth/2
}

// Scaled converts a world length to collision-space units.
func (a *ArenaData) Scaled(d float64) float64 {
	return d * a.scale()
}

func (a *ArenaData) scale() float64 {
	if a.Scale <= 0 {
		return 1
	}
	return a.Scale
}
