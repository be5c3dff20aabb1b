package main

import (
	"context"
	"log"
	"time"

	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/platform"
	"github.com/automoto/zstrike/scenes"
	"github.com/automoto/zstrike/shared/leveldata"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

// Game hosts one Survival simulation in the ebiten loop.
type Game struct {
	sim      *scenes.Survival
	arena    *leveldata.ArenaData
	reporter platform.Reporter
	input    inputPoller
}

func NewGame(arena *leveldata.ArenaData, reporter platform.Reporter) *Game {
	return &Game{
		sim:      scenes.NewSurvival(scenes.WithArena(arena), scenes.WithPhysics(true)),
		arena:    arena,
		reporter: reporter,
	}
}

func (g *Game) Update() error {
	in := g.input.poll()

	if g.sim.Phase() != cfg.MatchStatePlaying {
		if g.input.started() {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.publish(g.sim.Start())
		}
		return nil
	}

	frame := g.sim.Tick(time.Second/time.Duration(ebiten.TPS()), in)
	g.publish(frame)
	if frame.Ended != nil {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	return nil
}

func (g *Game) publish(f messages.FrameEvents) {
	if err := platform.Publish(context.Background(), g.reporter, f); err != nil {
		log.Printf("Report failed: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawRadar(screen, g.sim, g.arena)
	drawHUD(screen, g.sim)
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}
