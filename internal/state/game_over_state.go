// internal/state/game_over_state.go
package state

import (
	"fmt"
	"math"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState shows the banner, the final score and a Retry button.
type GameOverState struct {
	sm       *StateMachine
	game     interfaces.Game
	renderer *ui.Renderer
	retry    *ui.Button
}

func NewGameOverState(sm *StateMachine, game interfaces.Game, renderer *ui.Renderer) *GameOverState {
	return &GameOverState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		retry:    ui.NewButton(config.ScreenWidth/2, config.ScreenHeight-120, "Retry"),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	retry := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		retry = retry || s.retry.Clicked(x, y)
	}
	if retry {
		s.game.Reset()
		s.sm.SetState(NewGameState(s.sm, s.game, s.renderer))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	ui.DrawBanner(screen, "GAME OVER", config.ScreenHeight/3)

	lines := []string{
		fmt.Sprintf("Score: %.0f", math.Floor(snap.Score)),
		fmt.Sprintf("Frames survived: %d", snap.Frame),
		fmt.Sprintf("Enemies killed: %d of %d", snap.Stats.EnemiesKilled, snap.Stats.EnemiesSpawned),
		fmt.Sprintf("Defenders placed: %d, lost: %d", snap.Stats.DefendersPlaced, snap.Stats.DefendersLost),
		fmt.Sprintf("Resources collected: %d", snap.Stats.ResourcesCollected),
	}
	y := float64(config.ScreenHeight)/3 + 60
	for _, line := range lines {
		ui.DrawTextCentered(screen, line, config.ScreenWidth/2, y, 1.5, config.BannerColor)
		y += config.StatsLineHeight
	}

	x, my := ebiten.CursorPosition()
	s.retry.Draw(screen, x, my)
}

func (s *GameOverState) Exit() {}
