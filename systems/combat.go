package systems

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/automoto/zstrike/shared/invariant"
	"github.com/automoto/zstrike/shared/messages"
	"github.com/automoto/zstrike/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves every contact queued since the last combat phase:
// projectile hits first, then projectiles on geometry, then attacks on the
// player. Once an attack ends the match the remaining events are dropped.
func UpdateCombat(ecs *ecs.ECS) {
	ProjectileAgentContactEvent.ProcessEvents(ecs.World)
	ProjectileWorldContactEvent.ProcessEvents(ecs.World)
	AgentReachedPlayerEvent.ProcessEvents(ecs.World)
}

func onProjectileAgentContact(w donburi.World, ev ProjectileAgentContact) {
	if !IsMatchPlaying(w) {
		return
	}
	registry := registryOf(w)

	// A projectile is single-use: whatever it touched, it is gone.
	projectile, ok := registry.Projectile(w, ev.ProjectileID)
	if !ok {
		return
	}
	removeProjectile(w, projectile, messages.ReasonConsumed)

	agent, ok := registry.Agent(w, ev.AgentID)
	if !ok {
		logOf(w).Debug("contact with stale agent dropped", "projectile", ev.ProjectileID, "agent", ev.AgentID)
		return
	}
	enemy := components.Enemy.Get(agent)
	if enemy.Dead() {
		return
	}
	applyHit(w, agent, enemy, ev.ProjectileID)
}

func applyHit(w donburi.World, agent *donburi.Entry, enemy *components.EnemyData, projectileID uint64) {
	match := GetMatch(w)
	frame := frameOf(w)
	health := components.Health.Get(agent)

	before := health.Current
	health.Current -= cfg.Enemy.DamagePerHit
	invariant.Check(health.Current < before, "agent health did not decrease", "agent", enemy.ID)
	lethal := health.Current <= 0

	frame.Hits = append(frame.Hits, messages.HitEvent{
		ProjectileID: projectileID,
		AgentID:      enemy.ID,
		Remaining:    max(health.Current, 0),
		Lethal:       lethal,
	})

	if hud := playerHUD(w); hud != nil {
		hud.HitMarker = gween.New(1, 0, float32(cfg.Effects.HitMarker.Seconds()), ease.Linear)
		hud.HitMarkerAlpha = 1
	}

	if !lethal {
		match.AddHit(cfg.Match.HitScore)
		flash := components.Flash.Get(agent)
		flash.Tween = gween.New(1, 0, float32(cfg.Enemy.HitFlash.Seconds()), ease.Linear)
		flash.Intensity = 1
	} else {
		enemy.State = cfg.EnemyDead
		match.AddKill(cfg.Match.KillScore)
		msg := killMessage(w)
		frame.Kills = append(frame.Kills, messages.KillEvent{AgentID: enemy.ID, Message: msg})
		if hud := playerHUD(w); hud != nil {
			hud.PushKill(msg, clockOf(w).Now+cfg.Effects.KillFeedTTL, cfg.Effects.KillFeedSize)
		}
		id := enemy.ID
		removeAgent(w, agent, id)
		logOf(w).Debug("agent killed", "agent", id, "score", match.Score, "kills", match.Kills)
	}

	frame.ScoreChanged = true
	frame.Score = match.Score
}

func removeAgent(w donburi.World, agent *donburi.Entry, id uint64) {
	delete(registryOf(w).Agents, id)

	spawner := components.Spawner.Get(components.Spawner.MustFirst(w))
	spawner.Live--
	if !invariant.Check(spawner.Live >= 0, "live agent count below zero", "live", spawner.Live) {
		spawner.Live = 0
	}

	factory.Destroy(w, agent)

	frame := frameOf(w)
	frame.Despawns = append(frame.Despawns, messages.DespawnEvent{
		Kind:   messages.KindAgent,
		ID:     id,
		Reason: messages.ReasonKilled,
	})
}

func onProjectileWorldContact(w donburi.World, ev ProjectileWorldContact) {
	if !IsMatchPlaying(w) {
		return
	}
	if projectile, ok := registryOf(w).Projectile(w, ev.ProjectileID); ok {
		removeProjectile(w, projectile, messages.ReasonWorldContact)
	}
}

func onAgentReachedPlayer(w donburi.World, ev AgentReachedPlayer) {
	if !IsMatchPlaying(w) {
		return
	}
	agent, ok := registryOf(w).Agent(w, ev.AgentID)
	if !ok {
		return
	}
	enemy := components.Enemy.Get(agent)
	if enemy.State != cfg.EnemyAttacking {
		return
	}
	now := clockOf(w).Now
	if !enemy.CanAttack(now, cfg.Enemy.AttackCooldown) {
		return
	}
	enemy.HasAttacked = true
	enemy.LastAttack = now

	match := GetMatch(w)
	damage := gamemath.AttackDamage(match.Danger, cfg.Match.BaseAttackDamage)
	if !match.TakeDamage(damage) {
		return
	}

	frame := frameOf(w)
	frame.Attacks = append(frame.Attacks, messages.AttackEvent{AgentID: enemy.ID, Damage: damage})
	frame.HealthChanged = true
	frame.Health = match.Health

	if hud := playerHUD(w); hud != nil {
		hud.DamageFlash = gween.New(1, 0, float32(cfg.Effects.DamageFlash.Seconds()), ease.Linear)
		hud.DamageFlashAlpha = 1
	}

	if !match.Playing() {
		result := MatchResult(match)
		frame.Ended = &result
		logOf(w).Info("match ended", "score", match.Score, "kills", match.Kills, "survived", match.Elapsed)
	}
}

func killMessage(w donburi.World) string {
	msgs := cfg.Effects.KillMessages
	if len(msgs) == 0 {
		return ""
	}
	rng := components.Rand.Get(components.Rand.MustFirst(w))
	return msgs[rng.IntN(len(msgs))]
}

func playerHUD(w donburi.World) *components.HUDData {
	e, ok := GetPlayer(w)
	if !ok {
		return nil
	}
	return components.HUD.Get(e)
}
