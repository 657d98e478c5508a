// internal/state/menu_state.go
package state

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the start prompt shown before the first game.
type MenuState struct {
	sm       *StateMachine
	game     interfaces.Game
	renderer *ui.Renderer
	play     *ui.Button
}

func NewMenuState(sm *StateMachine, game interfaces.Game, renderer *ui.Renderer) *MenuState {
	return &MenuState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		play:     ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+60, "Play"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.play.Clicked(x, y)
	}
	if start && m.game.Start() {
		m.sm.SetState(NewGameState(m.sm, m.game, m.renderer))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.Draw(screen, m.game.Snapshot())
	ui.DrawBanner(screen, config.WindowTitle, config.ScreenHeight/2-80)
	ui.DrawTextCentered(screen, "Click Play to Start", config.ScreenWidth/2, config.ScreenHeight/2, 2, config.BannerColor)
	x, y := ebiten.CursorPosition()
	m.play.Draw(screen, x, y)
}

func (m *MenuState) Exit() {}
