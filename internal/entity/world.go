// internal/entity/world.go
package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/pkg/geom"
)

// World is the whole simulation state. It is owned by the loop driver and
// handed by pointer to every system; nothing else keeps references into it.
type World struct {
	Tuning defs.Tuning

	Frame             int
	EnemiesInterval   int
	NextResourceSpawn int
	GameOver          bool

	Economy component.Economy
	Stats   component.Stats
	Pointer geom.Pointer

	Cells       []*component.Cell
	Defenders   []*component.Defender
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Resources   []*component.ResourceBlock
}

// NewWorld returns a world in its initial state with the grid built.
// The caller schedules the first resource spawn.
func NewWorld(t defs.Tuning) *World {
	w := &World{Tuning: t}
	w.Reset()
	return w
}

// Reset restores the initial economy, counters and grid and drops every entity.
// NextResourceSpawn is left for the caller to reschedule.
func (w *World) Reset() {
	w.Clear()
	w.Frame = 0
	w.EnemiesInterval = w.Tuning.BaseEnemyInterval
	w.GameOver = false
	w.Economy = component.Economy{
		Resources:    w.Tuning.InitialResources,
		DefenderCost: w.Tuning.DefenderCost,
	}
	w.Stats = component.Stats{}
	w.BuildGrid()
}

// BuildGrid creates one cell per column for every lane below the control bar.
func (w *World) BuildGrid() {
	size := w.Tuning.CellSize
	w.Cells = w.Cells[:0]
	for y := size; y < w.Tuning.CanvasHeight; y += size {
		for x := 0.0; x < w.Tuning.CanvasWidth; x += size {
			w.Cells = append(w.Cells, &component.Cell{X: x, Y: y, Size: size})
		}
	}
}

// Clear drops all entity collections, grid included. Economy and stats survive.
func (w *World) Clear() {
	w.Cells = nil
	w.Defenders = nil
	w.Enemies = nil
	w.Projectiles = nil
	w.Resources = nil
}

// DefenderAt returns the defender standing exactly on cell (x, y), if any.
func (w *World) DefenderAt(x, y float64) *component.Defender {
	for _, d := range w.Defenders {
		if d.Occupies(x, y) {
			return d
		}
	}
	return nil
}

// EnemyInLane reports whether any enemy walks the row starting at y.
func (w *World) EnemyInLane(y float64) bool {
	for _, e := range w.Enemies {
		if e.InLane(y) {
			return true
		}
	}
	return false
}

// Difficulty is the current difficulty level derived from score.
func (w *World) Difficulty() int {
	return w.Economy.Difficulty(w.Tuning.ScorePerLevel)
}

// Entities returns every entity in draw order: cells, defenders, enemies,
// projectiles, resource blocks.
func (w *World) Entities() []component.Entity {
	out := make([]component.Entity, 0,
		len(w.Cells)+len(w.Defenders)+len(w.Enemies)+len(w.Projectiles)+len(w.Resources))
	for _, c := range w.Cells {
		out = append(out, c)
	}
	for _, d := range w.Defenders {
		out = append(out, d)
	}
	for _, e := range w.Enemies {
		out = append(out, e)
	}
	for _, p := range w.Projectiles {
		out = append(out, p)
	}
	for _, r := range w.Resources {
		out = append(out, r)
	}
	return out
}

// Compact keeps the items for which keep returns true, preserving order and
// reusing the backing array. Dropped tail slots are zeroed.
func Compact[T any](items []*T, keep func(*T) bool) []*T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	for i := n; i < len(items); i++ {
		items[i] = nil
	}
	return items[:n]
}
