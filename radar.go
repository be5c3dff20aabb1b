package main

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/scenes"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// World units per screen pixel on the radar
const radarScale = 8.0

var (
	colorGround     = color.RGBA{20, 24, 20, 255}
	colorObstacle   = color.RGBA{100, 100, 100, 255}
	colorPlayer     = color.RGBA{0, 128, 255, 255}
	colorAgent      = color.RGBA{200, 0, 0, 255}
	colorProjectile = color.RGBA{255, 220, 0, 255}
	colorTracer     = color.RGBA{255, 220, 0, 60}
)

// drawRadar draws a top-down view centred on the player, north up.
func drawRadar(screen *ebiten.Image, sim *scenes.Survival, arena *leveldata.ArenaData) {
	screen.Fill(colorGround)
	player := sim.Player()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(w)/2, float64(h)/2

	toScreen := func(x, z float64) (float32, float32) {
		return float32(cx + (x-player.Position.X)*radarScale), float32(cy + (z-player.Position.Z)*radarScale)
	}

	if arena != nil {
		for _, o := range arena.Obstacles {
			x, y := toScreen(o.X, o.Z)
			vector.FillRect(screen, x, y, float32(o.W*radarScale), float32(o.D*radarScale), colorObstacle, false)
		}
	}

	for _, a := range sim.Agents() {
		x, y := toScreen(a.Position.X, a.Position.Z)
		c := colorAgent
		if a.Flash > 0 {
			// Blend toward white while the hit flash lasts
			k := uint8(55 * a.Flash)
			c = color.RGBA{c.R + k, uint8(200 * a.Flash), uint8(200 * a.Flash), 255}
		}
		r := float32((cfg.Enemy.HalfExtent + a.Bob) * radarScale)
		vector.FillCircle(screen, x, y, r, c, true)
		// One ring per danger level above the first at spawn
		for i := 1; i < a.SpawnDanger; i++ {
			vector.StrokeCircle(screen, x, y, r+float32(2*i), 1, c, true)
		}
	}

	for _, p := range sim.Projectiles() {
		x, y := toScreen(p.Position.X, p.Position.Z)
		ox, oy := toScreen(p.Origin.X, p.Origin.Z)
		vector.StrokeLine(screen, ox, oy, x, y, 1, colorTracer, false)
		vector.FillCircle(screen, x, y, 2, colorProjectile, false)
	}

	// Player and facing
	fwd := gamemath.Forward(player.Yaw, 0)
	vector.FillCircle(screen, float32(cx), float32(cy), float32(cfg.Player.Radius*radarScale), colorPlayer, true)
	vector.StrokeLine(screen, float32(cx), float32(cy),
		float32(cx+fwd.X*3*radarScale), float32(cy+fwd.Z*3*radarScale), 2, colorPlayer, true)
}

func drawHUD(screen *ebiten.Image, sim *scenes.Survival) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m := sim.Match()

	switch m.Phase {
	case cfg.MatchStateMenu:
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO START", w/2-60, h/2)
		return
	case cfg.MatchStateEnded:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("YOU DIED  score %d  kills %d  survived %.0fs",
			m.Score, m.Kills, m.Elapsed.Seconds()), w/2-140, h/2)
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO RESTART", w/2-66, h/2+16)
		return
	}

	v := sim.View()

	if v.DamageFlash > 0 {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{120, 0, 0, uint8(100 * v.DamageFlash)}, false)
	}

	// Crosshair, white normally and red while the hit marker shows
	ch := color.RGBA{255, 255, 255, 200}
	if v.HitMarker > 0 {
		ch = color.RGBA{255, 40, 40, 255}
	}
	kick := float32(v.Recoil * 60)
	x, y := float32(w)/2, float32(h)/2-kick
	vector.FillRect(screen, x-8, y-1, 16, 2, ch, false)
	vector.FillRect(screen, x-1, y-8, 2, 16, ch, false)
	if v.MuzzleFlash {
		vector.FillCircle(screen, x, y, 5, colorProjectile, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d  KILLS %d", m.Score, m.Kills), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HEALTH %d/%d", m.Health, m.MaxHealth), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("DANGER %d (%d%%)", m.Danger, int(math.Floor(v.DangerProgress*100))), 10, 42)
	ebitenutil.DebugPrintAt(screen, v.AmmoText, w-110, h-26)

	for i, line := range v.KillFeed {
		if line.Alpha < 0.1 {
			continue
		}
		ebitenutil.DebugPrintAt(screen, line.Message, w-170, 10+16*i)
	}
}
