package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SpawnerData is the spawn director's bookkeeping. Live never exceeds the
// capacity for the current danger level.
type SpawnerData struct {
	LastSpawn time.Duration
	Live      int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
