// internal/interfaces/game.go
package interfaces

import (
	"go-lane-defense/internal/app"
	"go-lane-defense/internal/system"
)

// Game is what a frontend needs from the simulation: input in, snapshots out.
type Game interface {
	Start() bool
	Reset()
	Tick() bool
	Advance(steps int) int
	SetPaused(paused bool)
	Paused() bool
	SetPointer(x, y float64)
	ClearPointer()
	PlaceDefender() system.Placement
	Phase() app.Phase
	Snapshot() app.Snapshot
}

var _ Game = (*app.Game)(nil)
