package components

import (
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/zstrike/shared/messages"
	"github.com/yohamta/donburi"
)

// Frame collects the events of the tick in progress. The scene swaps it out
// for a fresh value after every tick.
var Frame = donburi.NewComponentType[messages.FrameEvents]()

type RandData struct {
	*rand.Rand
}

// Rand is the simulation's random source, injected so tests are reproducible.
var Rand = donburi.NewComponentType[RandData]()

type LoggerData struct {
	*slog.Logger
}

// Logger is the host's logger for the match; systems log through it.
var Logger = donburi.NewComponentType[LoggerData]()
