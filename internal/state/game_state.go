// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs the simulation and turns mouse input into pointer updates
// and placement requests.
type GameState struct {
	sm            *StateMachine
	game          interfaces.Game
	renderer      *ui.Renderer
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	lastPlacement system.Placement
	debug         bool
}

func NewGameState(sm *StateMachine, game interfaces.Game, renderer *ui.Renderer) *GameState {
	return &GameState{
		sm:          sm,
		game:        game,
		renderer:    renderer,
		indicator:   ui.NewStateIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors, config.SpeedMultipliers),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.indicator.Pulse()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	g.trackPointer()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			if g.handleUIClick(x, y) {
				return
			}
		} else {
			g.lastPlacement = g.game.PlaceDefender()
			if g.lastPlacement != system.Placed {
				log.Printf("Placement at (%d, %d) rejected: %s", x, y, g.lastPlacement)
			}
		}
	}

	steps := g.speedButton.Multiplier()
	if steps > config.MaxStepsPerFrame {
		steps = config.MaxStepsPerFrame
	}
	g.game.Advance(steps)

	if g.game.Phase() == app.PhaseGameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.game, g.renderer))
	}
}

// trackPointer mirrors the cursor into the simulation. A cursor outside the
// window leaves the pointer absent.
func (g *GameState) trackPointer() {
	x, y := ebiten.CursorPosition()
	if !g.renderer.Contains(x, y) {
		g.game.ClearPointer()
		return
	}
	g.game.SetPointer(float64(x), float64(y))
}

func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y)
}

// handleUIClick reports whether the click switched state.
func (g *GameState) handleUIClick(x, y int) bool {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	if g.speedButton.IsClicked(x, y) {
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.speedButton.ToggleState()
			log.Printf("Speed set to x%d", g.speedButton.Multiplier())
		}
		return false
	}
	if g.pauseButton.IsClicked(x, y) && time.Since(g.pauseButton.LastToggleTime) >= cooldown {
		g.pause()
		return true
	}
	return false
}

func (g *GameState) pause() {
	g.pauseButton.Toggle()
	g.indicator.Pulse()
	g.game.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) resume() {
	g.pauseButton.Toggle()
	g.indicator.Pulse()
	g.game.SetPaused(false)
	g.sm.SetState(g)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)

	var stateColor color.Color = config.RunningStateColor
	if snap.Paused {
		stateColor = config.PausedStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frame: %d  Interval: %d  Level: %d  Last: %s  TPS: %0.1f",
			snap.Frame, snap.EnemiesInterval, snap.Difficulty, g.lastPlacement, ebiten.ActualTPS()),
			config.HUDX, config.ScreenHeight-20)
	}
}

func (g *GameState) Exit() {}
