package systems

import (
	"math"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts detects projectile and melee contacts for the stand-in
// physics and reports them through the same notifications an external
// engine would use. Each projectile reports at most its first contact.
func UpdateContacts(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	arena := components.Arena.Get(spaceEntry)
	dt := clockOf(ecs.World).Seconds()

	// Temporary probe object for sweep queries
	size := arena.Scaled(cfg.Weapon.ProjectileRadius * 2)
	probe := resolv.NewObject(0, 0, size, size)
	space.Add(probe)
	defer space.Remove(probe)

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		body := components.Body.Get(e)
		from := body.Position.Sub(body.Velocity.Scale(dt))
		if hit, ok := sweepProjectile(probe, arena, from, body.Position); ok {
			if hit == nil {
				ProjectileWorldContactEvent.Publish(ecs.World, ProjectileWorldContact{ProjectileID: p.ID})
				return
			}
			ProjectileAgentContactEvent.Publish(ecs.World, ProjectileAgentContact{
				ProjectileID: p.ID,
				AgentID:      components.Enemy.Get(hit).ID,
			})
		}
	})

	detectMelee(ecs, space, arena)
}

// sweepProjectile samples the segment from..to and returns the first thing
// touched: an agent entry, or nil with ok=true for the ground or geometry.
func sweepProjectile(probe *resolv.Object, arena *components.ArenaData, from, to gamemath.Vec3) (*donburi.Entry, bool) {
	r := cfg.Weapon.ProjectileRadius
	steps := int(math.Ceil(to.Sub(from).Len() / cfg.Physics.SweepStep))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		pt := from.Add(to.Sub(from).Scale(float64(i) / float64(steps)))
		if pt.Y-r <= cfg.Physics.GroundY {
			return nil, true
		}

		sx, sy := arena.ToSpace(pt.X, pt.Z)
		probe.X, probe.Y = sx-probe.W/2, sy-probe.H/2
		probe.Update()

		check := probe.Check(0, 0, tags.ResolvEnemy, tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, o := range overlapping(probe, 0, 0, check.ObjectsByTags(tags.ResolvEnemy)) {
			agent, ok := o.Data.(*donburi.Entry)
			if !ok || !agent.Valid() || !verticalOverlap(agent, pt.Y, r) {
				continue
			}
			return agent, true
		}
		for _, o := range overlapping(probe, 0, 0, check.ObjectsByTags(tags.ResolvSolid)) {
			wall, ok := o.Data.(*donburi.Entry)
			if ok && wall.Valid() && verticalOverlap(wall, pt.Y, r) {
				return nil, true
			}
		}
	}
	return nil, false
}

func verticalOverlap(e *donburi.Entry, y, r float64) bool {
	body := components.Body.Get(e)
	return math.Abs(y-body.Position.Y) <= body.HalfHeight+r
}

// detectMelee reports every agent within melee range of the player.
func detectMelee(ecs *ecs.ECS, space *resolv.Space, arena *components.ArenaData) {
	playerEntry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	target := components.CameraPosition(components.Body.Get(playerEntry), cfg.Player.EyeHeight)

	reach := arena.Scaled(cfg.Enemy.MeleeRange * 2)
	probe := resolv.NewObject(0, 0, reach, reach)
	sx, sy := arena.ToSpace(target.X, target.Z)
	probe.X, probe.Y = sx-reach/2, sy-reach/2
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		agent, ok := o.Data.(*donburi.Entry)
		if !ok || !agent.Valid() {
			continue
		}
		if gamemath.HorizontalDistance(components.Body.Get(agent).Position, target) <= cfg.Enemy.MeleeRange {
			AgentReachedPlayerEvent.Publish(ecs.World, AgentReachedPlayer{AgentID: components.Enemy.Get(agent).ID})
		}
	}
}
