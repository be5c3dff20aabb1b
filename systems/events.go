package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Contact notifications delivered by the physics collaborator. They queue
// until the combat phase of the next tick resolves them in order.
type ProjectileAgentContact struct {
	ProjectileID uint64
	AgentID      uint64
}

type ProjectileWorldContact struct {
	ProjectileID uint64
}

// AgentReachedPlayer is an attack attempt, from the physics collaborator or
// from an Attacking agent's own behaviour. Both share the agent's cooldown.
type AgentReachedPlayer struct {
	AgentID uint64
}

type PlayerGrounded struct{}

var (
	ProjectileAgentContactEvent = events.NewEventType[ProjectileAgentContact]()
	ProjectileWorldContactEvent = events.NewEventType[ProjectileWorldContact]()
	AgentReachedPlayerEvent     = events.NewEventType[AgentReachedPlayer]()
	PlayerGroundedEvent         = events.NewEventType[PlayerGrounded]()
)

// SubscribeHandlers wires the contact handlers into a fresh world.
// Call it once per world.
func SubscribeHandlers(w donburi.World) {
	PlayerGroundedEvent.Subscribe(w, onPlayerGrounded)
	ProjectileAgentContactEvent.Subscribe(w, onProjectileAgentContact)
	ProjectileWorldContactEvent.Subscribe(w, onProjectileWorldContact)
	AgentReachedPlayerEvent.Subscribe(w, onAgentReachedPlayer)
}
