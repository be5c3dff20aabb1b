package gamemath

import (
	"math"
	"time"
)

// DangerLevel is floor(elapsed/period) + 1. Negative elapsed counts as zero.
func DangerLevel(elapsed, period time.Duration) int {
	if elapsed < 0 || period <= 0 {
		return 1
	}
	return int(elapsed/period) + 1
}

// DangerProgress is the fraction of the current danger period already elapsed.
func DangerProgress(elapsed, period time.Duration) float64 {
	if elapsed < 0 || period <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}

// SpawnInterval returns max(min, base - danger*step).
func SpawnInterval(danger int, base, step, min time.Duration) time.Duration {
	iv := base - time.Duration(danger)*step
	if iv < min {
		return min
	}
	return iv
}

// SpawnCapacity returns base + danger*perLevel.
func SpawnCapacity(danger, base, perLevel int) int {
	return base + danger*perLevel
}

// AgentHealth returns floor(base + danger*perLevel), never below 1.
func AgentHealth(danger, base int, perLevel float64) int {
	h := int(math.Floor(float64(base) + float64(danger)*perLevel))
	if h < 1 {
		return 1
	}
	return h
}

// AgentSpeedFactor returns 1 + danger*perLevel.
func AgentSpeedFactor(danger int, perLevel float64) float64 {
	return 1 + float64(danger)*perLevel
}

// AttackDamage returns base + danger.
func AttackDamage(danger, base int) int {
	return base + danger
}
