package components

import (
	"time"

	cfg "github.com/automoto/zstrike/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type WeaponData struct {
	State    cfg.WeaponStateID
	Ammo     int
	Capacity int

	HasFired    bool
	LastShot    time.Duration // Clock time of the last shot
	FiringSince time.Duration
	ReloadSince time.Duration

	// Cosmetic
	Recoil       *gween.Tween
	RecoilOffset float32
}

var Weapon = donburi.NewComponentType[WeaponData]()

func (w *WeaponData) Reloading() bool {
	return w.State == cfg.WeaponReloading
}

// MuzzleFlash is true while the cosmetic Firing state lasts.
func (w *WeaponData) MuzzleFlash() bool {
	return w.State == cfg.WeaponFiring
}
