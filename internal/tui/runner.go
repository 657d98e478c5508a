// internal/tui/runner.go
package tui

import (
	"fmt"
	"log"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Runner drives a game in a terminal. Input is read on tcell's event
// goroutine and handed to the frame loop over a channel, so the game is only
// touched from Run.
type Runner struct {
	screen tcell.Screen
	game   interfaces.Game
	view   *View
	layout Layout

	speeds     []int
	speed      int
	buttonDown bool
}

// New opens the terminal and returns a runner for game.
func New(game interfaces.Game, layout Layout, fieldWidth, fieldHeight float64) (*Runner, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	return NewRunner(screen, game, layout, fieldWidth, fieldHeight), nil
}

// NewRunner wraps an initialised screen.
func NewRunner(screen tcell.Screen, game interfaces.Game, layout Layout, fieldWidth, fieldHeight float64) *Runner {
	return &Runner{
		screen: screen,
		game:   game,
		view:   NewView(layout, fieldWidth, fieldHeight),
		layout: layout,
		speeds: config.SpeedMultipliers,
	}
}

// Run loops until the player quits, stepping the game every frameTime.
func (r *Runner) Run(frameTime time.Duration) {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	r.Frame()
	for {
		select {
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}

// Frame advances the game by the current speed and redraws.
func (r *Runner) Frame() {
	r.game.Advance(r.Speed())
	r.view.Draw(r.screen, r.game.Snapshot())
	r.screen.Show()
}

// Speed is the number of steps run per frame.
func (r *Runner) Speed() int {
	return r.speeds[r.speed]
}

// HandleEvent applies one input event. It returns false when the player quits.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		r.startOrRetry()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 's', 'r':
		r.startOrRetry()
	case 'p':
		if r.game.Phase() == app.PhaseRunning {
			r.game.SetPaused(!r.game.Paused())
		}
	case '+':
		r.speed = (r.speed + 1) % len(r.speeds)
		log.Printf("Speed set to x%d", r.Speed())
	}
	return true
}

func (r *Runner) startOrRetry() {
	switch r.game.Phase() {
	case app.PhaseNotStarted:
		r.game.Start()
	case app.PhaseGameOver:
		r.game.Reset()
	}
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	clicked := pressed && !r.buttonDown
	r.buttonDown = pressed

	col, row := ev.Position()
	if col < 0 || row < 0 || col >= r.view.width || row >= r.view.height {
		r.game.ClearPointer()
		return
	}
	r.game.SetPointer(r.layout.ToField(col, row))

	if clicked {
		if res := r.game.PlaceDefender(); res != system.Placed {
			log.Printf("Placement at (%d, %d) rejected: %s", col, row, res)
		}
	}
}

// Close restores the terminal.
func (r *Runner) Close() {
	r.screen.Fini()
}
