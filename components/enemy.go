package components

import (
	"time"

	cfg "github.com/automoto/zstrike/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ID    uint64
	State cfg.EnemyStateID

	// Fixed at spawn
	BaseSpeed   float64
	SpeedFactor float64
	BobSpeed    float64
	BobHeight   float64
	SpawnDanger int
	SpawnedAt   time.Duration

	HasAttacked bool
	LastAttack  time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()

func (e *EnemyData) Speed() float64 {
	return e.BaseSpeed * e.SpeedFactor
}

func (e *EnemyData) Dead() bool {
	return e.State == cfg.EnemyDead
}

// CanAttack reports whether the per-agent cooldown has elapsed at now.
func (e *EnemyData) CanAttack(now, cooldown time.Duration) bool {
	return !e.HasAttacked || now-e.LastAttack >= cooldown
}
