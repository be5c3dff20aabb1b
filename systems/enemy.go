package systems

import (
	"github.com/automoto/zstrike/components"
	cfg "github.com/automoto/zstrike/config"
	"github.com/automoto/zstrike/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each live agent's pursue/attack behaviour against the
// player's camera position. Attacks are queued for the combat phase.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	target := components.CameraPosition(components.Body.Get(playerEntry), cfg.Player.EyeHeight)
	now := clockOf(ecs.World).Now

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Dead() {
			return
		}
		body := components.Body.Get(e)
		dist := gamemath.HorizontalDistance(body.Position, target)

		switch enemy.State {
		case cfg.EnemyPursuing:
			if dist > cfg.Enemy.MeleeRange {
				pursue(body, enemy, target)
				return
			}
			enemy.State = cfg.EnemyAttacking
			logOf(ecs.World).Debug("agent attacking", "agent", enemy.ID, "distance", dist)
			fallthrough

		case cfg.EnemyAttacking:
			if dist > cfg.Enemy.MeleeRange {
				enemy.State = cfg.EnemyPursuing
				pursue(body, enemy, target)
				return
			}
			body.Velocity.X, body.Velocity.Z = 0, 0
			if enemy.CanAttack(now, cfg.Enemy.AttackCooldown) {
				AgentReachedPlayerEvent.Publish(ecs.World, AgentReachedPlayer{AgentID: enemy.ID})
			}
		}
	})
}

func pursue(body *components.BodyData, enemy *components.EnemyData, target gamemath.Vec3) {
	dir := target.Sub(body.Position).Horizontal().Normalize()
	v := dir.Scale(enemy.Speed())
	body.Velocity.X, body.Velocity.Z = v.X, v.Z
}

// BobOffset is the agent's cosmetic vertical bob at time now.
func BobOffset(enemy *components.EnemyData, nowSeconds float64) float64 {
	if enemy.State != cfg.EnemyPursuing {
		return 0
	}
	return gamemath.Bob(nowSeconds, enemy.BobSpeed, enemy.BobHeight)
}
