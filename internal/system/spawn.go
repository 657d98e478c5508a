// internal/system/spawn.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
	"math"
)

// EnemiesInterval is the number of frames between enemy waves for a given score:
// max(min, base - step*difficulty).
func EnemiesInterval(t defs.Tuning, score float64) int {
	difficulty := math.Floor(score / t.ScorePerLevel)
	if difficulty < 0 {
		difficulty = 0
	}
	interval := float64(t.BaseEnemyInterval) - float64(t.EnemyIntervalStep)*difficulty
	if interval < float64(t.MinEnemyInterval) {
		return t.MinEnemyInterval
	}
	return int(interval)
}

// SpawnSystem injects enemy waves and resource blocks.
type SpawnSystem struct {
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewSpawnSystem(eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// WaveDue reports whether the current frame starts a new wave.
func (s *SpawnSystem) WaveDue(w *entity.World) bool {
	return w.EnemiesInterval > 0 && w.Frame%w.EnemiesInterval == 0
}

// SpawnWave adds one wave of enemies at the right edge and returns how many were spawned.
func (s *SpawnSystem) SpawnWave(w *entity.World) int {
	t := w.Tuning
	count := t.WaveSize
	hard := w.Economy.Score >= t.ScorePerLevel
	if hard {
		count = t.HardWaveSize
	}
	for n := 0; n < count; n++ {
		lane := float64(s.rng.Intn(t.Lanes())+1) * t.CellSize
		speed := s.rng.FloatRange(t.EnemySpeedMin, t.EnemySpeedMax)
		health := t.EnemyHealth
		if hard {
			health += t.EnemyHealthPerLevel * float64(w.Difficulty())
		}
		enemy := component.NewEnemy(t.CanvasWidth, lane, t.CellSize, speed, health)
		w.Enemies = append(w.Enemies, enemy)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
	}
	return count
}

// ScheduleResource picks the frame of the next resource block spawn.
func (s *SpawnSystem) ScheduleResource(w *entity.World) {
	w.NextResourceSpawn = w.Frame + w.Tuning.ResourceSpawnDelay + s.rng.Intn(w.Tuning.ResourceSpawnJitter)
}

// SpawnResource tries a bounded number of random cells for a new resource block.
// A cell is rejected when a defender stands on it or an enemy is within one cell of it.
// On success the next spawn is scheduled; when every attempt fails the cycle is
// skipped and the schedule is left untouched.
func (s *SpawnSystem) SpawnResource(w *entity.World) bool {
	t := w.Tuning
	for attempt := 0; attempt < t.ResourceSpawnAttempts; attempt++ {
		x := float64(s.rng.Intn(t.Columns())) * t.CellSize
		y := float64(s.rng.Intn(t.Lanes())+1) * t.CellSize
		if w.DefenderAt(x, y) != nil || enemyNear(w, x, y) {
			continue
		}

		block := &component.ResourceBlock{
			X:     x,
			Y:     y,
			Size:  t.CellSize,
			Value: s.rng.Stepped(t.ResourceValueMin, t.ResourceValueMax, t.ResourceValueStep),
		}
		w.Resources = append(w.Resources, block)
		s.ScheduleResource(w)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ResourceSpawned, Data: block})
		return true
	}
	return false
}

func enemyNear(w *entity.World, x, y float64) bool {
	size := w.Tuning.CellSize
	for _, e := range w.Enemies {
		if math.Abs(e.X-x) < size && math.Abs(e.Y-y) < size {
			return true
		}
	}
	return false
}
