package scenes

import (
	"fmt"
	"sort"
	"time"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/systems"
	"github.com/yohamta/donburi"
)

// MatchSnapshot is a read-only copy of the match state.
type MatchSnapshot struct {
	ID             string
	Phase          cfg.MatchStateID
	Score          int
	Kills          int
	Health         int
	MaxHealth      int
	Elapsed        time.Duration
	Danger         int
	DangerProgress float64
	LiveAgents     int
}

type AgentView struct {
	ID       uint64
	State    cfg.EnemyStateID
	Position gamemath.Vec3
	Health   int
	Flash    float64 // Hit flash intensity in [0,1]
	Bob      float64 // Cosmetic vertical offset

	// Rolled at spawn and never rescaled
	SpeedFactor float64
	SpawnDanger int
	Age         time.Duration
}

type ProjectileView struct {
	ID       uint64
	Origin   gamemath.Vec3
	Position gamemath.Vec3
	TTL      time.Duration
}

type PlayerView struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Yaw      float64
	Pitch    float64
	Grounded bool
}

type KillFeedLine struct {
	Message string
	Alpha   float64
}

// View is the cosmetic presentation state for a HUD.
type View struct {
	Weapon         cfg.WeaponStateID
	MuzzleFlash    bool
	Recoil         float64
	Ammo           int
	Capacity       int
	AmmoText       string
	HitMarker      float64
	DamageFlash    float64
	KillFeed       []KillFeedLine
	DangerProgress float64
}

// Phase is Menu until the first Start, then Playing until health runs out.
func (s *Survival) Phase() cfg.MatchStateID {
	if s.ecs == nil {
		return cfg.MatchStateMenu
	}
	if m := systems.GetMatch(s.ecs.World); m != nil {
		return m.State
	}
	return cfg.MatchStateMenu
}

func (s *Survival) Match() MatchSnapshot {
	if s.ecs == nil {
		return MatchSnapshot{Phase: cfg.MatchStateMenu}
	}
	matchEntry, ok := components.Match.First(s.ecs.World)
	if !ok {
		return MatchSnapshot{Phase: cfg.MatchStateMenu}
	}
	m := components.Match.Get(matchEntry)
	return MatchSnapshot{
		ID:             m.ID,
		Phase:          m.State,
		Score:          m.Score,
		Kills:          m.Kills,
		Health:         m.Health,
		MaxHealth:      m.Max,
		Elapsed:        m.Elapsed,
		Danger:         m.Danger,
		DangerProgress: systems.DangerProgress(m),
		LiveAgents:     components.Spawner.Get(matchEntry).Live,
	}
}

// Agents lists live agents ordered by id.
func (s *Survival) Agents() []AgentView {
	if s.ecs == nil {
		return nil
	}
	now := components.Clock.Get(components.Clock.MustFirst(s.ecs.World)).Now

	var out []AgentView
	components.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		out = append(out, AgentView{
			ID:       enemy.ID,
			State:    enemy.State,
			Position: components.Body.Get(e).Position,
			Health:   components.Health.Get(e).Current,
			Flash:    float64(components.Flash.Get(e).Intensity),
			Bob:      systems.BobOffset(enemy, now.Seconds()),

			SpeedFactor: enemy.SpeedFactor,
			SpawnDanger: enemy.SpawnDanger,
			Age:         now - enemy.SpawnedAt,
		})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Projectiles lists live projectiles ordered by id.
func (s *Survival) Projectiles() []ProjectileView {
	if s.ecs == nil {
		return nil
	}
	var out []ProjectileView
	components.Projectile.Each(s.ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		out = append(out, ProjectileView{
			ID:       p.ID,
			Origin:   p.Origin,
			Position: components.Body.Get(e).Position,
			TTL:      p.TTL,
		})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Survival) Player() PlayerView {
	if s.ecs == nil {
		return PlayerView{}
	}
	e, ok := systems.GetPlayer(s.ecs.World)
	if !ok {
		return PlayerView{}
	}
	body := components.Body.Get(e)
	player := components.Player.Get(e)
	return PlayerView{
		Position: body.Position,
		Velocity: body.Velocity,
		Yaw:      player.Yaw,
		Pitch:    player.Pitch,
		Grounded: body.Grounded,
	}
}

func (s *Survival) View() View {
	var v View
	if s.ecs == nil {
		return v
	}
	if m := systems.GetMatch(s.ecs.World); m != nil {
		v.DangerProgress = systems.DangerProgress(m)
	}
	e, ok := systems.GetPlayer(s.ecs.World)
	if !ok {
		return v
	}

	w := components.Weapon.Get(e)
	v.Weapon = w.State
	v.MuzzleFlash = w.MuzzleFlash()
	v.Recoil = float64(w.RecoilOffset)
	v.Ammo, v.Capacity = w.Ammo, w.Capacity
	v.AmmoText = fmt.Sprintf("%d/%d", w.Ammo, w.Capacity)
	if w.Reloading() {
		v.AmmoText = "RELOADING..."
	}

	hud := components.HUD.Get(e)
	v.HitMarker = float64(hud.HitMarkerAlpha)
	v.DamageFlash = float64(hud.DamageFlashAlpha)
	for _, k := range hud.KillFeed {
		v.KillFeed = append(v.KillFeed, KillFeedLine{Message: k.Message, Alpha: float64(k.Alpha)})
	}
	return v
}
