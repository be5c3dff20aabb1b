package scenes

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/invariant"
	"github.com/automoto/zstrike/shared/leveldata"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems"
	"github.com/automoto/zstrike/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Survival is the gameplay simulation. It is not safe for concurrent use:
// the host calls it from its single frame loop.
type Survival struct {
	ecs     *ecs.ECS
	rng     *rand.Rand
	arena   *leveldata.ArenaData
	physics bool
	log     *slog.Logger
}

type Option func(*Survival)

// WithRand sets the random source for spawn placement and agent stats.
func WithRand(rng *rand.Rand) Option {
	return func(s *Survival) { s.rng = rng }
}

// WithArena supplies static geometry. Obstacles only matter with physics enabled.
func WithArena(arena *leveldata.ArenaData) Option {
	return func(s *Survival) { s.arena = arena }
}

// WithPhysics enables the built-in stand-in physics. Hosts with their own
// engine leave it off and deliver contacts through the On* methods.
func WithPhysics(enabled bool) Option {
	return func(s *Survival) { s.physics = enabled }
}

// WithLogger sets the logger for the scene and its systems. Invariant
// violations still go to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Survival) { s.log = l }
}

func NewSurvival(opts ...Option) *Survival {
	s := &Survival{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Start begins a new match: score 0, health full, danger 1, no agents or
// projectiles. Entities left over from a previous match are reported as
// cleared in the returned frame.
func (s *Survival) Start() messages.FrameEvents {
	cleared := s.liveDespawns()

	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)
	systems.SubscribeHandlers(world)
	s.configure()

	id := uuid.NewString()
	factory.CreateMatch(s.ecs, id, s.rng, s.log)

	spawn := gamemath.Vec3{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY, Z: cfg.Player.SpawnZ}
	if arena := s.arenaData(); arena != nil {
		factory.CreateArena(s.ecs, arena, cfg.Physics.PixelsPerUnit, cfg.Physics.CellSize)
		spawn.X, spawn.Z = arena.Spawn.X, arena.Spawn.Z
	}
	factory.CreatePlayer(s.ecs, spawn)

	frame := s.takeFrame()
	frame.Despawns = append(cleared, frame.Despawns...)
	frame.Started = &messages.MatchStarted{MatchID: id}
	frame.ScoreChanged, frame.Score = true, 0
	frame.HealthChanged, frame.Health = true, cfg.Match.StartHealth
	frame.DangerChanged, frame.Danger = true, 1

	s.log.Info("match started", "match", id, "physics", s.physics)
	return frame
}

func (s *Survival) configure() {
	// Stand-in physics steps first, like an engine step before game logic.
	if s.physics {
		s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateKinematics))
		s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateContacts))
	}

	// (1) input and locomotion
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateLocomotion))
	// (2) weapon and projectiles
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateWeapon))
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateProjectiles))
	// (3) agent behaviour
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateEnemies))
	// (4) contact resolution
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCombat))
	// (5) spawn director
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateSpawner))
	// (6) match clock and danger
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateMatch))

	// Cosmetics run even on the tick the match ends
	s.ecs.AddSystem(systems.UpdateEffects)
}

func (s *Survival) arenaData() *leveldata.ArenaData {
	if s.arena != nil {
		return s.arena
	}
	if !s.physics {
		return nil
	}
	return &leveldata.ArenaData{
		Name:  "flat",
		Width: float64(cfg.Physics.ArenaWidth),
		Depth: float64(cfg.Physics.ArenaDepth),
	}
}

// Tick advances the simulation by dt and returns everything that happened.
// Outside the Playing phase it does nothing and returns an empty frame.
func (s *Survival) Tick(dt time.Duration, in messages.InputSnapshot) messages.FrameEvents {
	if !s.playing() {
		return messages.FrameEvents{MatchID: s.matchID()}
	}
	if !invariant.Check(dt >= 0, "negative tick duration", "dt", dt) {
		dt = 0
	}

	clock := components.Clock.Get(components.Clock.MustFirst(s.ecs.World))
	clock.Delta = dt
	clock.Now += dt
	clock.Tick++

	playerEntry, hasPlayer := systems.GetPlayer(s.ecs.World)
	if hasPlayer {
		components.Input.Get(playerEntry).Merge(in)
	}

	s.ecs.Update()

	if hasPlayer && playerEntry.Valid() {
		components.Input.Get(playerEntry).ClearTriggers()
	}

	frame := s.takeFrame()
	frame.Tick = clock.Tick
	if frame.Ended != nil {
		s.log.Info("match over", "match", frame.Ended.MatchID, "score", frame.Ended.Score,
			"kills", frame.Ended.Kills, "survived", frame.Ended.SurvivalSeconds)
	}
	return frame
}

// Fire requests a shot on the next tick. Invalid requests are ignored there.
func (s *Survival) Fire() {
	s.withInput(func(in *components.InputData) { in.FireRequested = true })
}

// Reload requests a reload on the next tick.
func (s *Survival) Reload() {
	s.withInput(func(in *components.InputData) { in.ReloadRequested = true })
}

// Jump requests a jump on the next tick. It is dropped if the body is airborne.
func (s *Survival) Jump() {
	s.withInput(func(in *components.InputData) { in.JumpRequested = true })
}

// AddLookDelta buffers raw look motion between ticks.
func (s *Survival) AddLookDelta(src messages.LookSource, dx, dy float64) {
	s.withInput(func(in *components.InputData) { in.AddLook(src, dx, dy) })
}

func (s *Survival) withInput(fn func(*components.InputData)) {
	if !s.playing() {
		return
	}
	if e, ok := systems.GetPlayer(s.ecs.World); ok {
		fn(components.Input.Get(e))
	}
}

// OnProjectileAgentContact queues a projectile touching an agent.
func (s *Survival) OnProjectileAgentContact(projectileID, agentID uint64) {
	if s.playing() {
		systems.ProjectileAgentContactEvent.Publish(s.ecs.World, systems.ProjectileAgentContact{
			ProjectileID: projectileID,
			AgentID:      agentID,
		})
	}
}

// OnProjectileWorldContact queues a projectile touching static geometry.
func (s *Survival) OnProjectileWorldContact(projectileID uint64) {
	if s.playing() {
		systems.ProjectileWorldContactEvent.Publish(s.ecs.World, systems.ProjectileWorldContact{ProjectileID: projectileID})
	}
}

// OnAgentReachedPlayer queues an attack attempt by an agent in melee range.
func (s *Survival) OnAgentReachedPlayer(agentID uint64) {
	if s.playing() {
		systems.AgentReachedPlayerEvent.Publish(s.ecs.World, systems.AgentReachedPlayer{AgentID: agentID})
	}
}

// OnPlayerGrounded marks the player's body as resting on a surface.
func (s *Survival) OnPlayerGrounded() {
	if s.playing() {
		systems.PlayerGroundedEvent.Publish(s.ecs.World, systems.PlayerGrounded{})
	}
}

// BotInput returns the autopilot's input for the current state.
func (s *Survival) BotInput() messages.InputSnapshot {
	if !s.playing() {
		return messages.InputSnapshot{}
	}
	return systems.BotInput(s.ecs.World)
}

func (s *Survival) playing() bool {
	return s.ecs != nil && systems.IsMatchPlaying(s.ecs.World)
}

func (s *Survival) matchID() string {
	if s.ecs == nil {
		return ""
	}
	if m := systems.GetMatch(s.ecs.World); m != nil {
		return m.ID
	}
	return ""
}

func (s *Survival) takeFrame() messages.FrameEvents {
	frame := components.Frame.Get(components.Frame.MustFirst(s.ecs.World))
	out := *frame
	*frame = messages.FrameEvents{MatchID: frame.MatchID}
	return out
}

// liveDespawns lists the entities of the current match as cleared.
func (s *Survival) liveDespawns() []messages.DespawnEvent {
	if s.ecs == nil {
		return nil
	}
	var out []messages.DespawnEvent
	components.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, messages.DespawnEvent{Kind: messages.KindAgent, ID: components.Enemy.Get(e).ID, Reason: messages.ReasonCleared})
	})
	components.Projectile.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, messages.DespawnEvent{Kind: messages.KindProjectile, ID: components.Projectile.Get(e).ID, Reason: messages.ReasonCleared})
	})
	return out
}
