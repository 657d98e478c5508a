// internal/tui/view.go
package tui

import (
	"fmt"
	"math"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleControlBar = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorGold)
	styleHighlight  = styleBackground.Foreground(tcell.ColorBlack).Bold(true)
	styleBanner     = styleBackground.Bold(true)
	styleProjectile = styleBackground.Foreground(tcell.ColorBlack)
)

var spriteStyles = map[component.Kind]tcell.Style{
	component.KindDefender: tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorGold),
	component.KindEnemy:    tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorGold),
	component.KindResource: tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack),
}

// View draws snapshots onto a tcell screen.
type View struct {
	layout        Layout
	width, height int
}

// NewView creates a view for a field of fieldWidth x fieldHeight pixels.
func NewView(layout Layout, fieldWidth, fieldHeight float64) *View {
	w, h := layout.Size(fieldWidth, fieldHeight)
	return &View{layout: layout, width: w, height: h}
}

// Draw renders snap. It does not call Show.
func (v *View) Draw(screen tcell.Screen, snap app.Snapshot) {
	v.fill(screen, 0, 0, v.width, v.height, ' ', styleBackground)

	switch snap.Phase {
	case app.PhaseNotStarted:
		v.drawCentered(screen, v.height/2-1, "LANE DEFENSE", styleBanner)
		v.drawCentered(screen, v.height/2+1, "press s to start, q to quit", styleBackground)
		return
	case app.PhaseGameOver:
		v.drawGameOver(screen, snap)
		return
	}

	v.fill(screen, 0, 0, v.width, v.layout.CellRows, ' ', styleControlBar)
	for _, sp := range snap.Sprites {
		v.drawSprite(screen, sp)
	}

	drawString(screen, 1, 0, fmt.Sprintf("Resources: %.0f", math.Floor(snap.Resources)), styleControlBar)
	drawString(screen, 1, 1, fmt.Sprintf("Score: %.0f", math.Floor(snap.Score)), styleControlBar)
	status := "p pause  + speed  q quit"
	if snap.Paused {
		status = "PAUSED  p resume"
	}
	drawString(screen, v.width-len(status)-1, 0, status, styleControlBar)
}

func (v *View) drawSprite(screen tcell.Screen, sp component.Sprite) {
	c0, r0, c1, r1 := v.layout.ToScreen(sp.Rect)

	switch sp.Kind {
	case component.KindCell:
		if sp.Highlight {
			v.frame(screen, c0, r0, c1, r1, styleHighlight)
		}
		return
	case component.KindProjectile:
		screen.SetContent(c0, r0, '●', nil, styleProjectile)
		return
	}

	style, ok := spriteStyles[sp.Kind]
	if !ok {
		return
	}
	v.fill(screen, c0, r0, c1, r1, ' ', style)
	if sp.Label != "" {
		drawString(screen, c0+(c1-c0-len(sp.Label))/2, (r0+r1)/2, sp.Label, style)
	}
}

func (v *View) drawGameOver(screen tcell.Screen, snap app.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %.0f", math.Floor(snap.Score)),
		fmt.Sprintf("Frames survived: %d", snap.Frame),
		fmt.Sprintf("Enemies killed: %d of %d", snap.Stats.EnemiesKilled, snap.Stats.EnemiesSpawned),
		fmt.Sprintf("Defenders placed: %d, lost: %d", snap.Stats.DefendersPlaced, snap.Stats.DefendersLost),
		fmt.Sprintf("Resources collected: %d", snap.Stats.ResourcesCollected),
	}
	row := v.height/2 - len(lines)/2 - 2
	v.drawCentered(screen, row, "GAME OVER", styleBanner)
	for i, line := range lines {
		v.drawCentered(screen, row+2+i, line, styleBackground)
	}
	v.drawCentered(screen, row+3+len(lines), "press r to retry, q to quit", styleBackground)
}

func (v *View) drawCentered(screen tcell.Screen, row int, s string, style tcell.Style) {
	drawString(screen, (v.width-len(s))/2, row, s, style)
}

func (v *View) fill(screen tcell.Screen, c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// frame outlines the span with box-drawing characters.
func (v *View) frame(screen tcell.Screen, c0, r0, c1, r1 int, style tcell.Style) {
	for x := c0; x < c1; x++ {
		screen.SetContent(x, r0, '─', nil, style)
		screen.SetContent(x, r1-1, '─', nil, style)
	}
	for y := r0; y < r1; y++ {
		screen.SetContent(c0, y, '│', nil, style)
		screen.SetContent(c1-1, y, '│', nil, style)
	}
	screen.SetContent(c0, r0, '┌', nil, style)
	screen.SetContent(c1-1, r0, '┐', nil, style)
	screen.SetContent(c0, r1-1, '└', nil, style)
	screen.SetContent(c1-1, r1-1, '┘', nil, style)
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
