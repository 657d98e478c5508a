// internal/system/economy.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/geom"
)

// Placement is the outcome of a defender placement request.
type Placement int

const (
	Placed Placement = iota
	RejectedNoPointer
	RejectedOutOfField
	RejectedControlBar
	RejectedOccupied
	RejectedFunds
	RejectedInactive
)

func (p Placement) String() string {
	switch p {
	case Placed:
		return "placed"
	case RejectedNoPointer:
		return "no pointer"
	case RejectedOutOfField:
		return "out of field"
	case RejectedControlBar:
		return "control bar"
	case RejectedOccupied:
		return "occupied"
	case RejectedFunds:
		return "insufficient resources"
	case RejectedInactive:
		return "game not running"
	}
	return "unknown"
}

// EconomySystem owns the resource balance and the score. Kill rewards and
// pickups arrive as events; purchases go through PlaceDefender.
type EconomySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(world *entity.World, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.ResourceCollected, s)
	return s
}

// OnEvent credits kill rewards and pointer pickups.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		s.world.Economy.Resources += data.Reward
		s.world.Economy.Score += data.Reward
	case event.ResourceCollectedData:
		if data.ByPointer {
			s.world.Economy.Resources += float64(data.Value)
		}
	}
}

// PlaceDefender buys a defender for the cell under p. Rejections leave the
// world untouched.
func (s *EconomySystem) PlaceDefender(p geom.Pointer) (*component.Defender, Placement) {
	w := s.world
	t := w.Tuning
	if p.Absent() {
		return nil, RejectedNoPointer
	}
	if p.X < 0 || p.Y < 0 || p.X >= t.CanvasWidth || p.Y >= t.CanvasHeight {
		return nil, RejectedOutOfField
	}

	if _, row := utils.CellIndex(p.X, p.Y, t.CellSize); row == 0 {
		return nil, RejectedControlBar
	}
	x, y := utils.SnapToGrid(p.X, p.Y, t.CellSize)
	if w.DefenderAt(x, y) != nil {
		return nil, RejectedOccupied
	}
	if !w.Economy.CanAfford() {
		return nil, RejectedFunds
	}

	d := component.NewDefender(x, y, t.CellSize, t.DefenderHealth)
	w.Defenders = append(w.Defenders, d)
	w.Economy.Resources -= w.Economy.DefenderCost
	s.eventDispatcher.Dispatch(event.Event{Type: event.DefenderPlaced, Data: d})
	return d, Placed
}

// StatsSystem keeps the per-run counters in the world up to date.
type StatsSystem struct {
	world *entity.World
}

func NewStatsSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{world: world}
	eventDispatcher.SubscribeAll(s)
	return s
}

func (s *StatsSystem) OnEvent(e event.Event) {
	st := &s.world.Stats
	switch e.Type {
	case event.EnemySpawned:
		st.EnemiesSpawned++
	case event.EnemyKilled:
		st.EnemiesKilled++
	case event.DefenderPlaced:
		st.DefendersPlaced++
	case event.DefenderDestroyed:
		st.DefendersLost++
	case event.ProjectileFired:
		st.ProjectilesFired++
	case event.ResourceCollected:
		if data, ok := e.Data.(event.ResourceCollectedData); ok && data.ByPointer {
			st.ResourcesCollected++
		}
	}
}
