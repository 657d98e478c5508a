// internal/app/game.go
package app

import (
	"log"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/geom"
)

// Game drives the simulation one frame at a time and owns the lifecycle.
// It is not safe for concurrent use: frontends call it from their frame callback only.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem      *system.SpawnSystem
	DefenderSystem   *system.DefenderSystem
	EnemySystem      *system.EnemySystem
	ProjectileSystem *system.ProjectileSystem
	ResourceSystem   *system.ResourceSystem
	EconomySystem    *system.EconomySystem
	StatsSystem      *system.StatsSystem

	phase  Phase
	paused bool
}

// NewGame builds a game in the NotStarted phase. Seed 0 picks a clock seed.
func NewGame(tuning defs.Tuning, seed int64) *Game {
	world := entity.NewWorld(tuning)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	spawner := system.NewSpawnSystem(eventDispatcher, rng)

	g := &Game{
		World:            world,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		SpawnSystem:      spawner,
		DefenderSystem:   system.NewDefenderSystem(eventDispatcher),
		EnemySystem:      system.NewEnemySystem(eventDispatcher, spawner),
		ProjectileSystem: system.NewProjectileSystem(),
		ResourceSystem:   system.NewResourceSystem(eventDispatcher),
		EconomySystem:    system.NewEconomySystem(world, eventDispatcher),
		StatsSystem:      system.NewStatsSystem(world, eventDispatcher),
		phase:            PhaseNotStarted,
	}
	spawner.ScheduleResource(world)
	return g
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Start leaves the start prompt. It does nothing outside NotStarted.
func (g *Game) Start() bool {
	if g.phase != PhaseNotStarted {
		return false
	}
	g.phase = PhaseRunning
	log.Printf("Game started (seed %d)", g.Rng.Seed())
	return true
}

// Reset reinitialises economy, spawn state and grid and goes straight to Running.
func (g *Game) Reset() {
	g.World.Reset()
	g.SpawnSystem.ScheduleResource(g.World)
	g.paused = false
	g.phase = PhaseRunning
	log.Printf("Game reset, next resource block at frame %d", g.World.NextResourceSpawn)
}

// SetPaused stops or resumes stepping. Input is still accepted while paused.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Tick runs one simulation step if the game is running and not paused.
// It reports whether a step was executed.
func (g *Game) Tick() bool {
	if g.phase != PhaseRunning || g.paused {
		return false
	}

	w := g.World
	g.DefenderSystem.Update(w)
	g.EnemySystem.Update(w)
	g.ProjectileSystem.Update(w)
	g.ResourceSystem.Update(w)
	if w.Frame == w.NextResourceSpawn {
		g.SpawnSystem.SpawnResource(w)
	}
	w.Frame++

	if w.GameOver {
		g.endGame()
	}
	return true
}

// Advance runs up to steps ticks back to back, stopping early if the game
// stops running. It returns the number of steps executed.
func (g *Game) Advance(steps int) int {
	n := 0
	for ; n < steps; n++ {
		if !g.Tick() {
			break
		}
	}
	return n
}

func (g *Game) endGame() {
	g.World.Clear()
	g.phase = PhaseGameOver
	log.Printf("Game over at frame %d: score %.0f, %d enemies killed",
		g.World.Frame, g.World.Economy.Score, g.World.Stats.EnemiesKilled)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.World.Frame})
}

// SetPointer moves the pointer to (x, y) in play-field coordinates.
func (g *Game) SetPointer(x, y float64) {
	g.World.Pointer = geom.NewPointer(x, y)
}

// ClearPointer marks the pointer as off the field.
func (g *Game) ClearPointer() {
	g.World.Pointer = geom.Pointer{}
}

// PlaceDefender tries to buy a defender on the cell under the pointer.
func (g *Game) PlaceDefender() system.Placement {
	if g.phase != PhaseRunning {
		return system.RejectedInactive
	}
	_, res := g.EconomySystem.PlaceDefender(g.World.Pointer)
	return res
}

// PlaceDefenderAt moves the pointer to (x, y) and places a defender there.
func (g *Game) PlaceDefenderAt(x, y float64) system.Placement {
	g.SetPointer(x, y)
	return g.PlaceDefender()
}

// Snapshot is a read-only view of one frame for rendering.
type Snapshot struct {
	Phase           Phase
	Paused          bool
	Frame           int
	Resources       float64
	Score           float64
	Difficulty      int
	EnemiesInterval int
	Stats           component.Stats
	Sprites         []component.Sprite // in draw order
}

// Snapshot captures what a frontend needs to draw the current frame.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Phase:           g.phase,
		Paused:          g.paused,
		Frame:           w.Frame,
		Resources:       w.Economy.Resources,
		Score:           w.Economy.Score,
		Difficulty:      w.Difficulty(),
		EnemiesInterval: w.EnemiesInterval,
		Stats:           w.Stats,
	}
	if g.phase != PhaseRunning {
		return s
	}

	entities := w.Entities()
	s.Sprites = make([]component.Sprite, 0, len(entities))
	for _, e := range entities {
		sp := e.Sprite()
		if sp.Kind == component.KindCell {
			sp.Highlight = geom.Collision(w.Pointer, e)
		}
		s.Sprites = append(s.Sprites, sp)
	}
	return s
}
