// Package leveldata parses arena maps into static collidable geometry.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// ArenaData is the static geometry of one arena in world units, centred on
// the world origin. Tiled's Y axis maps onto world Z.
type ArenaData struct {
	Name      string
	Width     float64
	Depth     float64
	Obstacles []Obstacle
	Spawn     SpawnPoint
}

// Obstacle is an axis-aligned footprint that blocks bodies and stops projectiles.
// X/Z is the minimum corner.
type Obstacle struct {
	X, Z   float64
	W, D   float64
	Height float64
	Kind   string // "wall", "house", "rock"
}

// SpawnPoint is the player start on the ground plane.
type SpawnPoint struct {
	X, Z float64
}

// Contains reports whether a world point lies inside the obstacle footprint.
func (o Obstacle) Contains(x, z float64) bool {
	return x >= o.X && x <= o.X+o.W && z >= o.Z && z <= o.Z+o.D
}
