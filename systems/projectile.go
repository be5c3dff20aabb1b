package systems

import (
	"github.com/automoto/zstrike/components"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every live projectile and expires those whose
// time-to-live has run out.
func UpdateProjectiles(ecs *ecs.ECS) {
	clock := clockOf(ecs.World)
	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		body := components.Body.Get(e)

		body.Position = body.Position.Add(body.Velocity.Scale(clock.Seconds()))
		p.TTL -= clock.Delta
		if p.TTL <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeProjectile(ecs.World, e, messages.ReasonExpired)
	}
}

func removeProjectile(w donburi.World, e *donburi.Entry, reason messages.DespawnReason) {
	id := components.Projectile.Get(e).ID
	delete(registryOf(w).Projectiles, id)
	factory.Destroy(w, e)

	frame := frameOf(w)
	frame.Despawns = append(frame.Despawns, messages.DespawnEvent{
		Kind:   messages.KindProjectile,
		ID:     id,
		Reason: reason,
	})
}
