package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/zstrike/assets"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/platform"
	"github.com/automoto/zstrike/runner"
	"github.com/automoto/zstrike/scenes"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.Physics.DefaultTick, "Simulation tick rate (ticks per second)")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	duration := flag.Duration("duration", 5*time.Minute, "Game-time limit (0 = until the player dies)")
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena to load (empty = flat ground)")
	reportURL := flag.String("report", "", "Websocket URL for match reports (empty = log only)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []scenes.Option{scenes.WithPhysics(true), scenes.WithLogger(logger)}
	if *arenaName != "" {
		arena, err := assets.LoadArena(*arenaName)
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		opts = append(opts, scenes.WithArena(arena))
	}

	var reporter platform.Reporter = platform.NewLogReporter(logger)
	if *reportURL != "" {
		ws, err := platform.DialWS(ctx, *reportURL)
		if err != nil {
			log.Fatalf("Failed to connect reporter: %v", err)
		}
		defer ws.Close()
		reporter = ws
	}

	loop := runner.NewGameLoop(scenes.NewSurvival(opts...), runner.Options{
		TickRate: *tickRate,
		Realtime: *realtime,
		Duration: *duration,
		Reporter: reporter,
		Logger:   logger,
	})

	res := loop.Run(ctx)
	log.Printf("Match %s: score %d, kills %d, survived %.0fs",
		res.MatchID, res.Score, res.Kills, res.SurvivalSeconds)
}
