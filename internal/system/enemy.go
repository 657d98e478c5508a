// internal/system/enemy.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// EnemySystem moves enemies, detects breaches, removes the dead and
// triggers enemy waves.
type EnemySystem struct {
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
}

func NewEnemySystem(eventDispatcher *event.Dispatcher, spawner *SpawnSystem) *EnemySystem {
	return &EnemySystem{
		eventDispatcher: eventDispatcher,
		spawner:         spawner,
	}
}

func (s *EnemySystem) Update(w *entity.World) {
	t := w.Tuning
	difficulty := w.Difficulty()
	w.EnemiesInterval = EnemiesInterval(t, w.Economy.Score)

	for _, e := range w.Enemies {
		// Growth compounds every frame while the score holds a level.
		if w.Economy.Score >= t.ScorePerLevel {
			e.Speed += t.EnemySpeedGrowth * float64(difficulty)
			if t.MaxEnemySpeed > 0 && e.Speed > t.MaxEnemySpeed {
				e.Speed = t.MaxEnemySpeed
			}
		}
		e.Advance()

		if e.Breached() {
			w.GameOver = true
		}
		if e.Dead() {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{MaxHealth: e.MaxHealth, Reward: e.Reward(t.RewardDivisor)},
			})
		}
	}
	w.Enemies = entity.Compact(w.Enemies, func(e *component.Enemy) bool { return !e.Dead() })

	if s.spawner.WaveDue(w) {
		s.spawner.SpawnWave(w)
	}
}
