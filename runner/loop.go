package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/automoto/zstrike/platform"
	"github.com/automoto/zstrike/scenes"
	"github.com/automoto/zstrike/shared/messages"
)

// InputSource produces the input for the next tick.
type InputSource func(*scenes.Survival) messages.InputSnapshot

// Bot drives the player with the built-in autopilot.
func Bot(s *scenes.Survival) messages.InputSnapshot {
	return s.BotInput()
}

type Options struct {
	TickRate int
	Realtime bool          // Pace ticks with a wall-clock ticker
	Duration time.Duration // Game-time limit, zero for none
	Input    InputSource
	Reporter platform.Reporter
	Logger   *slog.Logger
}

// GameLoop runs one match at a fixed tick rate until the player dies, the
// game-time limit is reached, or the loop is stopped.
type GameLoop struct {
	sim      *scenes.Survival
	opts     Options
	stopChan chan struct{}
	log      *slog.Logger
}

func NewGameLoop(sim *scenes.Survival, opts Options) *GameLoop {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Input == nil {
		opts.Input = Bot
	}
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &GameLoop{
		sim:      sim,
		opts:     opts,
		stopChan: make(chan struct{}),
		log:      l,
	}
}

// Run starts a match and blocks until it is over. The result covers the
// time survived so far when the loop stops early.
func (g *GameLoop) Run(ctx context.Context) messages.MatchResult {
	dt := time.Second / time.Duration(g.opts.TickRate)

	var tick <-chan time.Time
	if g.opts.Realtime {
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		tick = ticker.C
	}

	g.publish(ctx, g.sim.Start())
	g.log.Info("game loop started", "tickrate", g.opts.TickRate, "realtime", g.opts.Realtime, "limit", g.opts.Duration)

	var played time.Duration
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return g.stopped("context done")
			case <-g.stopChan:
				return g.stopped("stopped")
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return g.stopped("context done")
			case <-g.stopChan:
				return g.stopped("stopped")
			default:
			}
		}

		frame := g.sim.Tick(dt, g.opts.Input(g.sim))
		played += dt
		g.publish(ctx, frame)

		if frame.Ended != nil {
			g.log.Info("game loop finished", "reason", "player died")
			return *frame.Ended
		}
		if g.opts.Duration > 0 && played >= g.opts.Duration {
			return g.stopped("time limit")
		}
	}
}

// Stop ends Run after the current tick. Call it at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) publish(ctx context.Context, f messages.FrameEvents) {
	if g.opts.Reporter == nil {
		return
	}
	// Reporting failures never stop the simulation.
	if err := platform.Publish(ctx, g.opts.Reporter, f); err != nil {
		g.log.Warn("report failed", "match", f.MatchID, "err", err)
	}
}

func (g *GameLoop) stopped(reason string) messages.MatchResult {
	m := g.sim.Match()
	g.log.Info("game loop finished", "reason", reason, "score", m.Score, "kills", m.Kills)
	return messages.MatchResult{
		MatchID:         m.ID,
		Score:           m.Score,
		Kills:           m.Kills,
		SurvivalSeconds: m.Elapsed.Seconds(),
	}
}
