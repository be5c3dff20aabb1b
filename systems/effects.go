package systems

import (
	"github.com/automoto/zstrike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances cosmetic tweens. Nothing here feeds back into gameplay.
func UpdateEffects(ecs *ecs.ECS) {
	clock := clockOf(ecs.World)
	dt := float32(clock.Seconds())

	updateFlashEffects(ecs, dt)

	playerEntry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	updateRecoil(components.Weapon.Get(playerEntry), dt)
	updateHUD(components.HUD.Get(playerEntry), clock, dt)
}

// updateFlashEffects fades agent hit flashes and drops finished tweens
func updateFlashEffects(ecs *ecs.ECS, dt float32) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

func updateRecoil(w *components.WeaponData, dt float32) {
	if w.Recoil == nil {
		return
	}
	v, done := w.Recoil.Update(dt)
	w.RecoilOffset = v
	if done {
		w.Recoil = nil
		w.RecoilOffset = 0
	}
}

func updateHUD(hud *components.HUDData, clock *components.ClockData, dt float32) {
	if hud.HitMarker != nil {
		v, done := hud.HitMarker.Update(dt)
		hud.HitMarkerAlpha = v
		if done {
			hud.HitMarker = nil
			hud.HitMarkerAlpha = 0
		}
	}
	if hud.DamageFlash != nil {
		v, done := hud.DamageFlash.Update(dt)
		hud.DamageFlashAlpha = v
		if done {
			hud.DamageFlash = nil
			hud.DamageFlashAlpha = 0
		}
	}

	// Expire kill-feed lines, fading each over its last second
	kept := hud.KillFeed[:0]
	for _, k := range hud.KillFeed {
		left := k.Expires - clock.Now
		if left <= 0 {
			continue
		}
		k.Alpha = min(float32(left.Seconds()), 1)
		kept = append(kept, k)
	}
	hud.KillFeed = kept
}
