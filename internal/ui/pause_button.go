// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton toggles between the pause bars and the play triangle.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		pts := [][2]float32{
			{b.X - s, b.Y - s*1.2},
			{b.X - s, b.Y + s*1.2},
			{b.X + s, b.Y},
		}
		fillPolygon(screen, pts, b.PlayColor)
		strokePolygon(screen, pts, color.White)
		return
	}

	barW := s * 0.6
	barH := s * 2.4
	vector.DrawFilledRect(screen, b.X-s, b.Y-barH/2, barW, barH, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+s-barW, b.Y-barH/2, barW, barH, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.IsPaused = paused
		b.LastToggleTime = time.Now()
	}
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
