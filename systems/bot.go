package systems

import (
	"math"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/yohamta/donburi"
)

// BotInput produces an input snapshot for an autopilot that turns toward the
// nearest agent, fires when aimed and in range, reloads on empty and backs
// off from agents that get too close. It only reads the world.
func BotInput(w donburi.World) messages.InputSnapshot {
	var in messages.InputSnapshot

	playerEntry, ok := GetPlayer(w)
	if !ok {
		return in
	}
	player := components.Player.Get(playerEntry)
	weapon := components.Weapon.Get(playerEntry)
	eye := components.CameraPosition(components.Body.Get(playerEntry), cfg.Player.EyeHeight)

	target, dist, found := nearestAgent(w, eye)
	if !found {
		if weapon.Ammo < weapon.Capacity && !weapon.Reloading() {
			in.Reload = true
		}
		return in
	}

	// Yaw decreases as the pointer moves right, pitch as it moves down.
	wantYaw := gamemath.YawTowards(eye, target)
	d := target.Sub(eye)
	wantPitch := math.Atan2(d.Y, d.Horizontal().Len())

	yawErr := gamemath.WrapAngle(wantYaw - player.Yaw)
	pitchErr := wantPitch - player.Pitch
	sens := cfg.Player.PointerSensitivity
	in.PointerDX = -gamemath.Clamp(yawErr, -cfg.Bot.TurnRate, cfg.Bot.TurnRate) / sens
	in.PointerDY = -gamemath.Clamp(pitchErr, -cfg.Bot.TurnRate, cfg.Bot.TurnRate) / sens

	switch {
	case weapon.Ammo == 0 && !weapon.Reloading():
		in.Reload = true
	case dist <= cfg.Bot.EngageRange &&
		math.Abs(yawErr) <= cfg.Bot.AimTolerance &&
		math.Abs(pitchErr) <= cfg.Bot.AimTolerance:
		in.Fire = true
	}

	if dist < cfg.Bot.RetreatRange {
		in.Backward = true
	}
	return in
}

func nearestAgent(w donburi.World, from gamemath.Vec3) (gamemath.Vec3, float64, bool) {
	var best gamemath.Vec3
	bestDist := math.Inf(1)
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Dead() {
			return
		}
		pos := components.Body.Get(e).Position
		if d := gamemath.HorizontalDistance(from, pos); d < bestDist {
			best, bestDist = pos, d
		}
	})
	return best, bestDist, !math.IsInf(bestDist, 1)
}
