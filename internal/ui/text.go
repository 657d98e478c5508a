// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Face is the font used for every label. It is a fixed 7x13 bitmap font.
var Face = basicfont.Face7x13

const (
	glyphHeight = 13
	glyphAscent = 11
)

// TextWidth returns the width of s in pixels at the given scale.
func TextWidth(s string, scale float64) float64 {
	return float64(text.BoundString(Face, s).Dx()) * scale
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+glyphAscent*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, Face, op)
}

// DrawTextCentered draws s centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	DrawText(dst, s, cx-TextWidth(s, scale)/2, cy-glyphHeight*scale/2, scale, clr)
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
