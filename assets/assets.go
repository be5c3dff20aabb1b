package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/zstrike/shared/leveldata"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// DefaultArena is the map hosts load when none is chosen.
const DefaultArena = "outskirts"

// LoadArena loads an embedded arena by name.
func LoadArena(name string) (*leveldata.ArenaData, error) {
	arena, err := leveldata.LoadArena(arenaFS, fmt.Sprintf("arenas/%s.tmx", name))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return arena, nil
}

// MustLoadArena panics when an embedded arena is missing or malformed.
func MustLoadArena(name string) *leveldata.ArenaData {
	arena, err := LoadArena(name)
	if err != nil {
		panic(err)
	}
	return arena
}
