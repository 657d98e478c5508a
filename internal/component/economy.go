// internal/component/economy.go
package component

import "math"

// Economy is the player's balance sheet.
type Economy struct {
	Resources    float64
	Score        float64
	DefenderCost float64
}

// CanAfford reports whether a defender can be bought right now.
func (e *Economy) CanAfford() bool {
	return e.Resources >= e.DefenderCost
}

// Difficulty is floor(score / perLevel).
func (e *Economy) Difficulty(perLevel float64) int {
	return int(math.Floor(e.Score / perLevel))
}

// Stats counts what happened during one run.
type Stats struct {
	EnemiesKilled      int
	EnemiesSpawned     int
	DefendersPlaced    int
	DefendersLost      int
	ResourcesCollected int
	ProjectilesFired   int
}
