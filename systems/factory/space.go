package factory

import (
	"math"

	"github.com/automoto/zstrike/archetypes"
	"github.com/automoto/zstrike/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a collision space covering width×depth world units at
// pixelsPerUnit, split into cellSize-pixel cells.
func CreateSpace(ecs *ecs.ECS, width, depth, pixelsPerUnit float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	arena := components.ArenaData{Width: width, Depth: depth, Scale: pixelsPerUnit}
	spaceData := resolv.NewSpace(
		int(math.Ceil(arena.Scaled(width))),
		int(math.Ceil(arena.Scaled(depth))),
		cellSize, cellSize,
	)
	components.Space.Set(space, spaceData)
	components.Arena.SetValue(space, arena)
	return space
}

// newObject creates a collision object with a w×d world-unit footprint
// centred on x/z, and registers it with the space when one exists.
func newObject(ecs *ecs.ECS, x, z, w, d float64, tags ...string) *resolv.Object {
	arena := &components.ArenaData{}
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		arena = components.Arena.Get(spaceEntry)
	}

	sw, sd := arena.Scaled(w), arena.Scaled(d)
	sx, sy := arena.ToSpace(x, z)
	obj := resolv.NewObject(sx-sw/2, sy-sd/2, sw, sd, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, sw, sd))
	if ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// Destroy removes an entity and its collision object.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
