// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"time"

	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a caption, used for Play and Retry.
type Button struct {
	Rect          image.Rectangle
	Text          string
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	LastClickTime time.Time
}

// NewButton creates a button of the standard size centred on (cx, cy).
func NewButton(cx, cy int, text string) *Button {
	w, h := config.ButtonWidth, config.ButtonHeight
	return &Button{
		Rect:       image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2),
		Text:       text,
		TextColor:  color.Black,
		BgColor:    config.ButtonColor,
		HoverColor: render.DarkenColor(config.ButtonColor),
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports whether a click at (x, y) hits the button, honouring the click cooldown.
func (b *Button) Clicked(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	if time.Since(b.LastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw draws the button, highlighted when the cursor at (mx, my) hovers it.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonStrokeColor, false)

	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	DrawTextCentered(screen, b.Text, cx, cy, config.ButtonTextScale, b.TextColor)
}
