package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/automoto/zstrike/shared/messages"
)

//go:generate go tool mockgen -destination=./mocks/reporter_mock.go -package=mocks . Reporter

// Reporter forwards match milestones to an external platform.
type Reporter interface {
	MatchStart(ctx context.Context, matchID string) error
	ScoreUpdate(ctx context.Context, matchID string, score int) error
	MatchEnd(ctx context.Context, result messages.MatchResult) error
}

// Publish reports everything in one frame worth reporting. All calls are
// attempted; their errors are joined.
func Publish(ctx context.Context, r Reporter, f messages.FrameEvents) error {
	var errs []error
	if f.Started != nil {
		if err := r.MatchStart(ctx, f.Started.MatchID); err != nil {
			errs = append(errs, fmt.Errorf("match start: %w", err))
		}
	} else if f.ScoreChanged {
		if err := r.ScoreUpdate(ctx, f.MatchID, f.Score); err != nil {
			errs = append(errs, fmt.Errorf("score update: %w", err))
		}
	}
	if f.Ended != nil {
		if err := r.MatchEnd(ctx, *f.Ended); err != nil {
			errs = append(errs, fmt.Errorf("match end: %w", err))
		}
	}
	return errors.Join(errs...)
}

// LogReporter writes reports to a structured logger.
type LogReporter struct {
	log *slog.Logger
}

func NewLogReporter(l *slog.Logger) *LogReporter {
	if l == nil {
		l = slog.Default()
	}
	return &LogReporter{log: l.With("component", "platform")}
}

func (r *LogReporter) MatchStart(_ context.Context, matchID string) error {
	r.log.Info("match start", "match", matchID)
	return nil
}

func (r *LogReporter) ScoreUpdate(_ context.Context, matchID string, score int) error {
	r.log.Debug("score update", "match", matchID, "score", score)
	return nil
}

func (r *LogReporter) MatchEnd(_ context.Context, result messages.MatchResult) error {
	r.log.Info("match end", "match", result.MatchID, "score", result.Score,
		"kills", result.Kills, "survival_time", result.SurvivalSeconds)
	return nil
}
