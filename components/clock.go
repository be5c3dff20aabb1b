package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the monotonic simulation clock. Every time gate compares
// against Now.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
	Tick  uint64
}

var Clock = donburi.NewComponentType[ClockData]()

func (c *ClockData) Seconds() float64 {
	return c.Delta.Seconds()
}
