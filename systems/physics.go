package systems

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics is the stand-in rigid-body step for hosts without a
// physics engine. It integrates player and agent bodies with gravity
// against the ground plane and pushes them out of solid geometry.
func UpdateKinematics(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Seconds()
	if dt <= 0 {
		return
	}

	var arena *components.ArenaData
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		arena = components.Arena.Get(spaceEntry)
	}

	grounded := false
	integrate := func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		body.Velocity.Y = gamemath.ApplyGravity(body.Velocity.Y, cfg.Physics.Gravity, dt)

		dx := body.Velocity.X * dt
		dz := body.Velocity.Z * dt
		if arena != nil && obj.Space != nil {
			moveAndCollide(obj, arena.Scaled(dx), arena.Scaled(dz))
			body.Position.X, body.Position.Z = arena.FromSpace(obj.X+obj.W/2, obj.Y+obj.H/2)
		} else {
			body.Position.X += dx
			body.Position.Z += dz
		}

		body.Position.Y += body.Velocity.Y * dt
		var onGround bool
		body.Position.Y, body.Velocity.Y, onGround = gamemath.RestOnGround(
			body.Position.Y, body.Velocity.Y, body.HalfHeight, cfg.Physics.GroundY)

		if e.HasComponent(tags.Player) {
			grounded = grounded || onGround
		} else {
			body.Grounded = onGround
		}
	}

	tags.Player.Each(ecs.World, integrate)
	tags.Enemy.Each(ecs.World, integrate)

	if grounded {
		PlayerGroundedEvent.Publish(ecs.World, PlayerGrounded{})
	}
}

// moveAndCollide resolves horizontal motion, in collision-space units, one
// axis at a time, stopping at the first solid object in the way.
func moveAndCollide(obj *components.ObjectData, dx, dz float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := overlapping(obj.Object, dx, 0, check.ObjectsByTags(tags.ResolvSolid)); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dz != 0 {
		if check := obj.Check(0, dz, tags.ResolvSolid); check != nil {
			if solids := overlapping(obj.Object, 0, dz, check.ObjectsByTags(tags.ResolvSolid)); len(solids) > 0 {
				dz = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dz
	}
	obj.Update()
}

// overlapping narrows a broad-phase candidate list to the objects whose
// bounds intersect obj after moving it by dx/dy.
func overlapping(obj *resolv.Object, dx, dy float64, candidates []*resolv.Object) []*resolv.Object {
	var out []*resolv.Object
	for _, c := range candidates {
		if aabbOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, c.X, c.Y, c.W, c.H) {
			out = append(out, c)
		}
	}
	return out
}

func aabbOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
