package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks an agent's hit flash. Intensity runs from 1 down to 0.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
}

var Flash = donburi.NewComponentType[FlashData]()

// KillFeedEntry is one line of the kill feed.
type KillFeedEntry struct {
	Message string
	Expires time.Duration
	Alpha   float32
}

// HUDData holds the player's cosmetic overlays. None of it feeds back into gameplay.
type HUDData struct {
	HitMarker      *gween.Tween
	HitMarkerAlpha float32

	DamageFlash      *gween.Tween
	DamageFlashAlpha float32

	KillFeed []KillFeedEntry
}

var HUD = donburi.NewComponentType[HUDData]()

// PushKill adds a kill-feed line, keeping at most size entries.
func (h *HUDData) PushKill(msg string, expires time.Duration, size int) {
	h.KillFeed = append(h.KillFeed, KillFeedEntry{Message: msg, Expires: expires, Alpha: 1})
	if over := len(h.KillFeed) - size; over > 0 {
		h.KillFeed = h.KillFeed[over:]
	}
}
