package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	obstacleGroup = "Obstacles"
	spawnGroup    = "PlayerSpawn"

	defaultObstacleHeight = 3.0
)

var ErrNoSpawn = errors.New("no player spawn defined in map")

// LoadArena parses a TMX file into arena geometry. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(m.Width * m.TileWidth)
	depth := float64(m.Height * m.TileHeight)
	data := &ArenaData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: width,
		Depth: depth,
	}

	// Tiled origin is the top-left corner; the world origin is the map centre.
	halfW, halfD := width/2, depth/2

	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case obstacleGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				h := float64(o.Properties.GetInt("height"))
				if h <= 0 {
					h = defaultObstacleHeight
				}
				data.Obstacles = append(data.Obstacles, Obstacle{
					X:      o.X - halfW,
					Z:      o.Y - halfD,
					W:      o.Width,
					D:      o.Height,
					Height: h,
					Kind:   o.Properties.GetString("kind"),
				})
			}
		case spawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			data.Spawn = SpawnPoint{X: o.X - halfW, Z: o.Y - halfD}
			spawned = true
		}
	}

	if !spawned {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return data, nil
}
