package systems

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/invariant"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapon runs the rifle's state machine. Fire cadence is gated only by
// the fire interval; the Firing state is cosmetic.
func UpdateWeapon(ecs *ecs.ECS) {
	clock := clockOf(ecs.World)
	frame := frameOf(ecs.World)

	e, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	w := components.Weapon.Get(e)
	input := components.Input.Get(e)

	if w.State == cfg.WeaponReloading && clock.Now-w.ReloadSince >= cfg.Weapon.ReloadDuration {
		w.Ammo = w.Capacity
		w.State = cfg.WeaponReady
		frame.Reloads = append(frame.Reloads, messages.ReloadEvent{Completed: true, Ammo: w.Ammo})
	}
	if w.State == cfg.WeaponFiring && clock.Now-w.FiringSince >= cfg.Weapon.FiringDuration {
		w.State = cfg.WeaponReady
	}

	if input.ReloadRequested {
		startReload(w, clock, frame)
	}
	if input.FireRequested {
		fire(ecs, e, w, clock, frame)
	}
}

func startReload(w *components.WeaponData, clock *components.ClockData, frame *messages.FrameEvents) {
	if w.Reloading() || w.Ammo >= w.Capacity {
		return
	}
	w.State = cfg.WeaponReloading
	w.ReloadSince = clock.Now
	frame.Reloads = append(frame.Reloads, messages.ReloadEvent{Ammo: w.Ammo})
}

func fire(ecs *ecs.ECS, e *donburi.Entry, w *components.WeaponData, clock *components.ClockData, frame *messages.FrameEvents) {
	if w.Reloading() || w.Ammo <= 0 {
		return
	}
	if w.HasFired && clock.Now-w.LastShot < cfg.Weapon.FireInterval {
		return
	}

	w.Ammo--
	invariant.Check(w.Ammo >= 0 && w.Ammo <= w.Capacity, "ammo out of range", "ammo", w.Ammo)
	w.HasFired = true
	w.LastShot = clock.Now
	w.FiringSince = clock.Now
	w.State = cfg.WeaponFiring
	w.Recoil = gween.New(float32(cfg.Weapon.RecoilKick), 0, float32(cfg.Weapon.RecoilRecovery.Seconds()), ease.OutQuad)
	w.RecoilOffset = float32(cfg.Weapon.RecoilKick)

	player := components.Player.Get(e)
	body := components.Body.Get(e)
	origin := components.CameraPosition(body, cfg.Player.EyeHeight)
	velocity := gamemath.Forward(player.Yaw, player.Pitch).Scale(cfg.Weapon.MuzzleSpeed)

	p := factory.CreateProjectile(ecs, origin, velocity)
	id := components.Projectile.Get(p).ID
	frame.Shots = append(frame.Shots, messages.ShotEvent{
		ProjectileID: id,
		Ammo:         w.Ammo,
		X:            origin.X,
		Y:            origin.Y,
		Z:            origin.Z,
	})
	logOf(ecs.World).Debug("shot fired", "projectile", id, "ammo", w.Ammo)
}
