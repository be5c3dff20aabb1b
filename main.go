package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/automoto/zstrike/assets"
	"github.com/automoto/zstrike/platform"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena to load")
	flag.Parse()

	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("zstrike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(arena, platform.NewLogReporter(slog.Default()))); err != nil {
		log.Fatal(err)
	}
}
