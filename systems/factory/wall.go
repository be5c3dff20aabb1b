package factory

import (
	"github.com/automoto/zstrike/archetypes"
	"github.com/automoto/zstrike/components"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/leveldata"
	"github.com/automoto/zstrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateObstacle(ecs *ecs.ECS, o leveldata.Obstacle) *donburi.Entry {
	wall := archetypes.Obstacle.Spawn(ecs)

	// Create collision object
	obj := newObject(ecs, o.X+o.W/2, o.Z+o.D/2, o.W, o.D, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Body.SetValue(wall, components.BodyData{
		Position:   gamemath.Vec3{X: o.X + o.W/2, Y: o.Height / 2, Z: o.Z + o.D/2},
		HalfHeight: o.Height / 2,
		HalfWidth:  max(o.W, o.D) / 2,
	})

	return wall
}

// CreateArena builds the collision space and every obstacle of an arena.
func CreateArena(ecs *ecs.ECS, arena *leveldata.ArenaData, pixelsPerUnit float64, cellSize int) *donburi.Entry {
	space := CreateSpace(ecs, arena.Width, arena.Depth, pixelsPerUnit, cellSize)
	for _, o := range arena.Obstacles {
		CreateObstacle(ecs, o)
	}
	return space
}
