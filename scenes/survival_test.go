package scenes

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems"
	"github.com/automoto/zstrike/systems/factory"
	"pgregory.net/rapid"
)

const step = 16 * time.Millisecond

var idle messages.InputSnapshot

// tester is the part of *testing.T and *rapid.T the helpers need.
type tester interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newTestSurvival(t tester, opts ...Option) *Survival {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	s := NewSurvival(opts...)
	if f := s.Start(); f.Started == nil {
		t.Fatalf("Start did not report MatchStarted")
	}
	return s
}

// placeAgent puts an agent straight into the world, bypassing the spawn director.
func placeAgent(s *Survival, pos gamemath.Vec3, health int) uint64 {
	e := factory.CreateEnemy(s.ecs, pos, factory.EnemyStats{
		Health:      health,
		BaseSpeed:   cfg.Enemy.BaseSpeedMin,
		SpeedFactor: 1,
		BobSpeed:    cfg.Enemy.BobSpeedMin,
		Danger:      1,
	})
	components.Spawner.Get(components.Spawner.MustFirst(s.ecs.World)).Live++
	return components.Enemy.Get(e).ID
}

func placeProjectile(s *Survival) uint64 {
	e := factory.CreateProjectile(s.ecs, gamemath.Vec3{Y: 2}, gamemath.Vec3{Z: -cfg.Weapon.MuzzleSpeed})
	return components.Projectile.Get(e).ID
}

// advance ticks with idle input for at least d and returns every frame.
func advance(s *Survival, d time.Duration) []messages.FrameEvents {
	var frames []messages.FrameEvents
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		frames = append(frames, s.Tick(step, idle))
	}
	return frames
}

func fireOnce(t *testing.T, s *Survival) uint64 {
	t.Helper()
	s.Fire()
	f := s.Tick(step, idle)
	if len(f.Shots) != 1 {
		t.Fatalf("expected one shot, got %d", len(f.Shots))
	}
	return f.Shots[0].ProjectileID
}

func TestThreeShotScenario(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, 2)

	// Shot 1: non-lethal hit
	p1 := fireOnce(t, s)
	s.OnProjectileAgentContact(p1, agent)
	f := s.Tick(step, idle)
	if len(f.Hits) != 1 || f.Hits[0].Lethal || f.Hits[0].Remaining != 1 {
		t.Fatalf("shot 1 hits = %+v", f.Hits)
	}
	if !f.ScoreChanged || f.Score != 25 {
		t.Errorf("score after shot 1 = %d (changed %v), want 25", f.Score, f.ScoreChanged)
	}
	if len(f.Kills) != 0 {
		t.Errorf("unexpected kill on shot 1")
	}

	advance(s, cfg.Weapon.FireInterval)

	// Shot 2: kill
	p2 := fireOnce(t, s)
	s.OnProjectileAgentContact(p2, agent)
	f = s.Tick(step, idle)
	if len(f.Kills) != 1 || f.Kills[0].AgentID != agent {
		t.Fatalf("shot 2 kills = %+v", f.Kills)
	}
	if f.Score != 125 {
		t.Errorf("score after kill = %d, want 125", f.Score)
	}
	if m := s.Match(); m.Kills != 1 || m.LiveAgents != 0 {
		t.Errorf("match = %+v, want 1 kill and no live agents", m)
	}
	if len(s.Agents()) != 0 {
		t.Errorf("dead agent still listed")
	}

	advance(s, cfg.Weapon.FireInterval)

	// Shot 3: nothing to hit; it flies out its TTL without any scoring event
	p3 := fireOnce(t, s)
	var expired bool
	for _, f := range advance(s, cfg.Weapon.ProjectileTTL+step) {
		if len(f.Hits) != 0 || len(f.Kills) != 0 || f.ScoreChanged {
			t.Fatalf("shot 3 produced scoring events: %+v", f)
		}
		for _, d := range f.Despawns {
			if d.ID == p3 && d.Reason == messages.ReasonExpired {
				expired = true
			}
		}
	}
	if !expired {
		t.Error("shot 3 never expired")
	}
	if got := s.Match().Score; got != 125 {
		t.Errorf("final score = %d, want 125", got)
	}
}

func TestAttackReducesHealth(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Z: -1, Y: 1}, 2)

	// The host also reports the agent in reach; both share one cooldown.
	s.OnAgentReachedPlayer(agent)
	s.OnAgentReachedPlayer(agent)
	f := s.Tick(step, idle)

	if len(f.Attacks) != 1 {
		t.Fatalf("got %d attacks, want 1", len(f.Attacks))
	}
	if f.Attacks[0].Damage != 6 || !f.HealthChanged || f.Health != 94 {
		t.Errorf("attack = %+v, health = %d", f.Attacks[0], f.Health)
	}

	// Still inside the cooldown
	for _, f := range advance(s, cfg.Enemy.AttackCooldown-2*step) {
		if len(f.Attacks) != 0 {
			t.Fatalf("agent attacked during its cooldown")
		}
	}

	var again bool
	for _, f := range advance(s, 4*step) {
		again = again || len(f.Attacks) > 0
	}
	if !again {
		t.Error("agent did not attack after its cooldown")
	}
	if got := s.Match().Health; got != 88 {
		t.Errorf("health = %d, want 88", got)
	}
}

func TestLethalAttacksClampAndEndMatch(t *testing.T) {
	s := newTestSurvival(t)
	for i := 0; i < 20; i++ {
		angle := float64(i) / 20 * 2 * math.Pi
		placeAgent(s, gamemath.Vec3{X: math.Cos(angle), Y: 1, Z: math.Sin(angle)}, 2)
	}

	f := s.Tick(step, idle)

	// 16 attacks of 6 leave 4; the 17th floors at 0 and the rest are dropped.
	if len(f.Attacks) != 17 {
		t.Errorf("got %d attacks, want 17", len(f.Attacks))
	}
	if f.Health != 0 {
		t.Errorf("health = %d, want 0", f.Health)
	}
	if f.Ended == nil {
		t.Fatal("match end not reported")
	}
	if f.Ended.Score != 0 || f.Ended.Kills != 0 || f.Ended.MatchID != s.Match().ID {
		t.Errorf("result = %+v", *f.Ended)
	}
	if s.Phase() != cfg.MatchStateEnded {
		t.Errorf("phase = %v, want ended", s.Phase())
	}

	// Frozen afterwards
	s.Fire()
	after := s.Tick(time.Second, messages.InputSnapshot{Fire: true})
	if !after.Empty() {
		t.Errorf("ended match produced events: %+v", after)
	}
	if m := s.Match(); m.Health != 0 || m.Elapsed != 0 {
		t.Errorf("counters moved after end: %+v", m)
	}
}

func TestDangerAfterNinetySeconds(t *testing.T) {
	s := newTestSurvival(t)

	var changes []int
	for i := 0; i < 90; i++ {
		f := s.Tick(time.Second, idle)
		if f.DangerChanged {
			changes = append(changes, f.Danger)
		}
	}

	m := s.Match()
	if m.Elapsed != 90*time.Second {
		t.Errorf("elapsed = %v, want 90s", m.Elapsed)
	}
	if m.Danger != 2 {
		t.Errorf("danger = %d, want 2", m.Danger)
	}
	if len(changes) != 1 || changes[0] != 2 {
		t.Errorf("danger changes = %v, want [2]", changes)
	}
	if math.Abs(m.DangerProgress-0.5) > 1e-9 {
		t.Errorf("danger progress = %f, want 0.5", m.DangerProgress)
	}
}

func TestFireSpacing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := newTestSurvival(rt)
		gaps := rapid.SliceOfN(rapid.IntRange(1, 400), 1, 80).Draw(rt, "gaps")

		var now, lastShot time.Duration
		shots := 0
		for _, g := range gaps {
			dt := time.Duration(g) * time.Millisecond
			now += dt
			s.Fire()
			f := s.Tick(dt, idle)
			for range f.Shots {
				if shots > 0 && now-lastShot < cfg.Weapon.FireInterval {
					rt.Fatalf("shots %v apart", now-lastShot)
				}
				shots++
				lastShot = now
			}
			if v := s.View(); v.Ammo < 0 || v.Ammo > v.Capacity {
				rt.Fatalf("ammo out of range: %d", v.Ammo)
			}
		}
		if shots > cfg.Weapon.MagazineCapacity {
			rt.Fatalf("%d shots from one magazine", shots)
		}
		if got := s.View().Ammo; got != cfg.Weapon.MagazineCapacity-shots {
			rt.Fatalf("ammo = %d after %d shots", got, shots)
		}
	})
}

func TestEmptyMagazineIgnoresFire(t *testing.T) {
	s := newTestSurvival(t)
	for i := 0; i < cfg.Weapon.MagazineCapacity; i++ {
		fireOnce(t, s)
		advance(s, cfg.Weapon.FireInterval)
	}
	s.Fire()
	if f := s.Tick(step, idle); len(f.Shots) != 0 {
		t.Fatalf("fired with an empty magazine")
	}
	if v := s.View(); v.Ammo != 0 || v.AmmoText != "0/30" {
		t.Errorf("view = %+v", v)
	}
}

func TestReloadIsAtomic(t *testing.T) {
	s := newTestSurvival(t)

	s.Reload()
	if f := s.Tick(step, idle); len(f.Reloads) != 0 {
		t.Fatalf("reload started with a full magazine")
	}

	for i := 0; i < 3; i++ {
		fireOnce(t, s)
		advance(s, cfg.Weapon.FireInterval)
	}

	s.Reload()
	f := s.Tick(step, idle)
	if len(f.Reloads) != 1 || f.Reloads[0].Completed {
		t.Fatalf("reload start = %+v", f.Reloads)
	}
	if v := s.View(); v.AmmoText != "RELOADING..." {
		t.Errorf("ammo text = %q", v.AmmoText)
	}

	completed := false
	for tick := 0; tick < 200 && !completed; tick++ {
		s.Fire()
		s.Reload()
		f := s.Tick(10*time.Millisecond, idle)
		for _, r := range f.Reloads {
			if !r.Completed {
				t.Fatal("re-entrant reload started a second reload")
			}
			if r.Ammo != cfg.Weapon.MagazineCapacity {
				t.Fatalf("reload completed with %d rounds", r.Ammo)
			}
			completed = true
		}
		if !completed {
			if len(f.Shots) != 0 {
				t.Fatal("fired while reloading")
			}
			if v := s.View(); v.Ammo != cfg.Weapon.MagazineCapacity-3 {
				t.Fatalf("partial ammo visible during reload: %d", v.Ammo)
			}
		}
	}
	if !completed {
		t.Fatal("reload never completed")
	}
}

func TestSpawnDirectorRespectsCapacity(t *testing.T) {
	s := newTestSurvival(t)

	var spawns []messages.SpawnEvent
	for _, f := range advance(s, 30*time.Second) {
		spawns = append(spawns, f.Spawns...)
		if live := s.Match().LiveAgents; live > 7 {
			t.Fatalf("live agents %d over capacity", live)
		}
	}

	if len(spawns) != 7 || len(s.Agents()) != 7 {
		t.Fatalf("got %d spawns and %d agents, want 7", len(spawns), len(s.Agents()))
	}
	first := spawns[0]
	for _, sp := range spawns {
		r := math.Hypot(sp.X, sp.Z)
		if r < cfg.Spawn.RingMinRadius || r > cfg.Spawn.RingMaxRadius {
			t.Errorf("agent %d spawned at radius %f", sp.AgentID, r)
		}
		if sp.Y != cfg.Spawn.Height || sp.Health != 2 || math.Abs(sp.SpeedFactor-1.1) > 1e-9 {
			t.Errorf("spawn = %+v", sp)
		}
	}
	for _, a := range s.Agents() {
		if a.ID == first.AgentID && a.Health != first.Health {
			t.Errorf("agent health changed after spawn")
		}
	}
}

func TestFirstSpawnWaitsForInterval(t *testing.T) {
	s := newTestSurvival(t)
	interval := gamemath.SpawnInterval(1, cfg.Spawn.BaseInterval, cfg.Spawn.IntervalStep, cfg.Spawn.MinInterval)

	for _, f := range advance(s, interval-2*step) {
		if len(f.Spawns) != 0 {
			t.Fatal("agent spawned before the first interval elapsed")
		}
	}
	spawned := 0
	for _, f := range advance(s, 4*step) {
		spawned += len(f.Spawns)
	}
	if spawned != 1 {
		t.Errorf("spawned %d agents at the interval, want 1", spawned)
	}
}

func TestSingleKillPerAgent(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, 2)

	var projectiles []uint64
	for i := 0; i < 5; i++ {
		id := placeProjectile(s)
		projectiles = append(projectiles, id)
		s.OnProjectileAgentContact(id, agent)
	}
	f := s.Tick(step, idle)

	if len(f.Hits) != 2 || len(f.Kills) != 1 {
		t.Fatalf("hits = %d, kills = %d; want 2 and 1", len(f.Hits), len(f.Kills))
	}
	if f.Score != 125 {
		t.Errorf("score = %d, want 125", f.Score)
	}
	consumed := 0
	for _, d := range f.Despawns {
		if d.Kind == messages.KindProjectile && d.Reason == messages.ReasonConsumed {
			consumed++
		}
	}
	if consumed != len(projectiles) {
		t.Errorf("%d projectiles consumed, want %d", consumed, len(projectiles))
	}
	if len(s.Projectiles()) != 0 {
		t.Errorf("projectiles survived their contact")
	}

	// Late contacts for the dead agent change nothing
	s.OnProjectileAgentContact(placeProjectile(s), agent)
	if f := s.Tick(step, idle); len(f.Hits) != 0 || len(f.Kills) != 0 || f.ScoreChanged {
		t.Errorf("dead agent produced events: %+v", f)
	}
}

func TestAgentHealthNeverIncreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := newTestSurvival(rt)
		health := rapid.IntRange(1, 6).Draw(rt, "health")
		agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, health)
		hits := rapid.IntRange(1, 10).Draw(rt, "hits")

		prev := health
		kills := 0
		for i := 0; i < hits; i++ {
			s.OnProjectileAgentContact(placeProjectile(s), agent)
			f := s.Tick(step, idle)
			kills += len(f.Kills)
			for _, h := range f.Hits {
				if h.Remaining > prev {
					rt.Fatalf("health rose from %d to %d", prev, h.Remaining)
				}
				prev = h.Remaining
			}
		}
		want := 0
		if hits >= health {
			want = 1
		}
		if kills != want {
			rt.Fatalf("%d kill events for %d hits on %d health", kills, hits, health)
		}
	})
}

func TestProjectileExpiryAndContactAreExclusive(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, 5)

	// Expired first: a late contact finds nothing.
	p1 := placeProjectile(s)
	advance(s, cfg.Weapon.ProjectileTTL+step)
	s.OnProjectileAgentContact(p1, agent)
	s.OnProjectileWorldContact(p1)
	if f := s.Tick(step, idle); len(f.Hits) != 0 || len(f.Despawns) != 0 {
		t.Errorf("expired projectile produced events: %+v", f)
	}

	// Consumed first: it never expires later.
	p2 := placeProjectile(s)
	s.OnProjectileAgentContact(p2, agent)
	if f := s.Tick(step, idle); len(f.Hits) != 1 {
		t.Fatalf("contact did not hit")
	}
	for _, f := range advance(s, cfg.Weapon.ProjectileTTL+step) {
		for _, d := range f.Despawns {
			if d.ID == p2 {
				t.Fatalf("consumed projectile despawned again: %+v", d)
			}
		}
	}
}

func TestWorldContactRemovesProjectile(t *testing.T) {
	s := newTestSurvival(t)
	p := placeProjectile(s)
	s.OnProjectileWorldContact(p)
	f := s.Tick(step, idle)
	if len(f.Despawns) != 1 || f.Despawns[0].Reason != messages.ReasonWorldContact {
		t.Fatalf("despawns = %+v", f.Despawns)
	}
}

func TestLookDeltaAppliedOnce(t *testing.T) {
	s := newTestSurvival(t)

	s.AddLookDelta(messages.LookPointer, 100, 50)
	s.AddLookDelta(messages.LookTouch, 1000, 1000)
	s.Tick(step, idle)

	p := s.Player()
	if math.Abs(p.Yaw+0.2) > 1e-9 || math.Abs(p.Pitch+0.1) > 1e-9 {
		t.Fatalf("yaw/pitch = %f/%f, want -0.2/-0.1", p.Yaw, p.Pitch)
	}

	s.Tick(step, idle)
	if q := s.Player(); q.Yaw != p.Yaw || q.Pitch != p.Pitch {
		t.Errorf("look re-applied without new input")
	}

	s.Tick(step, messages.InputSnapshot{TouchDX: 10})
	if q := s.Player(); math.Abs(q.Yaw-(p.Yaw-0.05)) > 1e-9 {
		t.Errorf("touch look yaw = %f, want %f", q.Yaw, p.Yaw-0.05)
	}

	s.Tick(step, messages.InputSnapshot{PointerDY: -1e6})
	if q := s.Player(); math.Abs(q.Pitch-cfg.Player.MaxPitch) > 1e-9 {
		t.Errorf("pitch = %f, want clamp at %f", q.Pitch, cfg.Player.MaxPitch)
	}
}

func TestWalkVelocity(t *testing.T) {
	s := newTestSurvival(t)

	s.Tick(step, messages.InputSnapshot{Forward: true, Right: true})
	v := s.Player().Velocity
	if math.Abs(v.Horizontal().Len()-cfg.Player.WalkSpeed) > 1e-9 {
		t.Errorf("walk speed = %f", v.Horizontal().Len())
	}
	if v.X <= 0 || v.Z >= 0 {
		t.Errorf("forward-right velocity = %+v", v)
	}

	s.Tick(step, messages.InputSnapshot{Forward: true, JoystickX: -1})
	if v := s.Player().Velocity; math.Abs(v.X+cfg.Player.WalkSpeed) > 1e-9 || math.Abs(v.Z) > 1e-9 {
		t.Errorf("joystick did not override axes: %+v", v)
	}

	s.Tick(step, idle)
	if v := s.Player().Velocity; v.X != 0 || v.Z != 0 {
		t.Errorf("velocity without input = %+v", v)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	s := newTestSurvival(t)

	s.Jump()
	s.Tick(step, idle)
	if v := s.Player().Velocity; v.Y != 0 {
		t.Fatalf("jumped while airborne: %+v", v)
	}

	s.OnPlayerGrounded()
	s.Tick(step, messages.InputSnapshot{Jump: true, Forward: true})
	p := s.Player()
	if p.Velocity.Y != cfg.Player.JumpVelocity || p.Grounded {
		t.Fatalf("jump = %+v", p)
	}
	// Walking speed carries through the jump frame
	if h := p.Velocity.Horizontal().Len(); math.Abs(h-cfg.Player.WalkSpeed) > 1e-9 {
		t.Errorf("horizontal speed on jump = %f, want %v", h, cfg.Player.WalkSpeed)
	}

	s.Jump()
	s.Tick(step, idle)
	if s.Player().Velocity.Y != cfg.Player.JumpVelocity {
		t.Error("second jump accepted mid-air")
	}
}

func TestBeforeStart(t *testing.T) {
	s := NewSurvival()
	if s.Phase() != cfg.MatchStateMenu {
		t.Errorf("phase = %v, want menu", s.Phase())
	}
	s.Fire()
	s.OnAgentReachedPlayer(1)
	if f := s.Tick(step, messages.InputSnapshot{Fire: true}); !f.Empty() {
		t.Errorf("tick before start produced %+v", f)
	}
}

func TestRestartClearsMatch(t *testing.T) {
	s := newTestSurvival(t)
	first := s.Match().ID
	agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, 2)
	s.Tick(step, idle)

	f := s.Start()
	if f.Started == nil || f.Started.MatchID == first {
		t.Fatalf("restart kept match id %q", first)
	}
	if len(f.Despawns) != 1 || f.Despawns[0].ID != agent || f.Despawns[0].Reason != messages.ReasonCleared {
		t.Errorf("despawns = %+v", f.Despawns)
	}
	if m := s.Match(); m.Score != 0 || m.Health != 100 || m.Danger != 1 || m.LiveAgents != 0 {
		t.Errorf("match after restart = %+v", m)
	}
}

func TestCosmeticView(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Z: -20, Y: 1}, 3)

	p := fireOnce(t, s)
	if v := s.View(); !v.MuzzleFlash || v.Recoil <= 0 {
		t.Errorf("view after shot = %+v", v)
	}
	s.OnProjectileAgentContact(p, agent)
	s.Tick(step, idle)
	if v := s.View(); v.HitMarker <= 0 {
		t.Errorf("no hit marker after hit")
	}
	if a := s.Agents(); len(a) != 1 || a[0].Flash <= 0 {
		t.Errorf("agents = %+v", a)
	}

	advance(s, 400*time.Millisecond)
	v := s.View()
	if v.MuzzleFlash || v.HitMarker != 0 || v.Recoil != 0 {
		t.Errorf("cosmetics did not settle: %+v", v)
	}
	if a := s.Agents(); a[0].Flash != 0 {
		t.Errorf("hit flash did not fade")
	}
}

func TestKillFeed(t *testing.T) {
	s := newTestSurvival(t)
	for i := 0; i < 4; i++ {
		agent := placeAgent(s, gamemath.Vec3{Z: -20, X: float64(i), Y: 1}, 1)
		s.OnProjectileAgentContact(placeProjectile(s), agent)
	}
	f := s.Tick(step, idle)
	if len(f.Kills) != 4 {
		t.Fatalf("kills = %d", len(f.Kills))
	}

	feed := s.View().KillFeed
	if len(feed) != cfg.Effects.KillFeedSize {
		t.Fatalf("kill feed has %d lines", len(feed))
	}
	for _, line := range feed {
		if line.Message == "" {
			t.Error("empty kill message")
		}
	}

	advance(s, cfg.Effects.KillFeedTTL+step)
	if feed := s.View().KillFeed; len(feed) != 0 {
		t.Errorf("kill feed not expired: %+v", feed)
	}
}

func agentBody(t *testing.T, s *Survival, id uint64) *components.BodyData {
	t.Helper()
	e, ok := components.Registry.Get(components.Registry.MustFirst(s.ecs.World)).Agent(s.ecs.World, id)
	if !ok {
		t.Fatalf("agent %d not live", id)
	}
	return components.Body.Get(e)
}

func TestAgentStatsFixedAtSpawn(t *testing.T) {
	s := newTestSurvival(t)

	var first messages.SpawnEvent
	for _, f := range advance(s, cfg.Spawn.BaseInterval+step) {
		if len(f.Spawns) > 0 {
			first = f.Spawns[0]
		}
	}
	if first.AgentID == 0 || first.Danger != 1 {
		t.Fatalf("first spawn = %+v", first)
	}

	// Jump the clock to one second before danger 2
	components.Match.Get(components.Match.MustFirst(s.ecs.World)).Elapsed = cfg.Match.DangerPeriod - time.Second
	advance(s, time.Second+step)
	if d := s.Match().Danger; d != 2 {
		t.Fatalf("danger = %d, want 2", d)
	}

	var later []messages.SpawnEvent
	for _, f := range advance(s, cfg.Spawn.BaseInterval) {
		later = append(later, f.Spawns...)
	}
	if len(later) == 0 {
		t.Fatal("no agent spawned at danger 2")
	}
	if sp := later[0]; sp.Danger != 2 || sp.Health != 3 || math.Abs(sp.SpeedFactor-1.2) > 1e-9 {
		t.Errorf("danger 2 spawn = %+v", sp)
	}

	for _, a := range s.Agents() {
		if a.ID != first.AgentID {
			continue
		}
		if a.SpawnDanger != 1 || math.Abs(a.SpeedFactor-1.1) > 1e-9 || a.Health != first.Health {
			t.Errorf("first agent rescaled: %+v", a)
		}
		if a.Age <= 0 {
			t.Errorf("age = %v", a.Age)
		}
		if a.State == cfg.EnemyPursuing {
			v := agentBody(t, s, a.ID).Velocity.Horizontal().Len()
			if v < cfg.Enemy.BaseSpeedMin*1.1-1e-9 || v > (cfg.Enemy.BaseSpeedMin+cfg.Enemy.BaseSpeedJitter)*1.1+1e-9 {
				t.Errorf("first agent speed %f outside its spawn-time range", v)
			}
		}
		return
	}
	t.Fatal("first agent not live")
}

func TestAgentResumesPursuitOutOfRange(t *testing.T) {
	s := newTestSurvival(t)
	agent := placeAgent(s, gamemath.Vec3{Y: 1, Z: -1}, 2)

	s.Tick(step, idle)
	if a := s.Agents()[0]; a.State != cfg.EnemyAttacking {
		t.Fatalf("state = %v, want attacking", a.State)
	}
	if v := agentBody(t, s, agent).Velocity.Horizontal(); !v.IsZero() {
		t.Errorf("attacking agent still moving: %+v", v)
	}

	p, _ := systems.GetPlayer(s.ecs.World)
	components.Body.Get(p).Position.Z = 5

	s.Tick(step, idle)
	if a := s.Agents()[0]; a.State != cfg.EnemyPursuing {
		t.Fatalf("state = %v, want pursuing", a.State)
	}
	v := agentBody(t, s, agent).Velocity
	if v.X != 0 || math.Abs(v.Z-cfg.Enemy.BaseSpeedMin) > 1e-9 {
		t.Errorf("velocity = %+v, want %v toward +Z", v, cfg.Enemy.BaseSpeedMin)
	}
}

func TestProjectileViewKeepsOrigin(t *testing.T) {
	s := newTestSurvival(t)
	placeProjectile(s)
	s.Tick(step, idle)

	ps := s.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("got %d projectiles", len(ps))
	}
	if ps[0].Origin != (gamemath.Vec3{Y: 2}) || ps[0].Position.Z >= 0 {
		t.Errorf("projectile = %+v", ps[0])
	}
}

func TestWithLoggerReachesSystems(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestSurvival(t, WithLogger(l))

	fireOnce(t, s)
	if out := buf.String(); !strings.Contains(out, "shot fired") || !strings.Contains(out, "match="+s.Match().ID) {
		t.Errorf("log output = %q", out)
	}
}
