// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles the number of simulation steps run per display frame.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	Multipliers    []int
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color, multipliers []int) *SpeedButton {
	return &SpeedButton{
		X:            x,
		Y:            y,
		Size:         size,
		StateColors:  stateColors,
		Multipliers:  multipliers,
		CurrentState: 0,
	}
}

// Multiplier is the number of steps per frame in the current state.
func (b *SpeedButton) Multiplier() int {
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]
	height := size * 1.2
	width := size
	offset := width * 0.8

	// Two "fast forward" triangles.
	for _, dx := range []float32{0, offset} {
		pts := [][2]float32{
			{b.X - width + dx, b.Y - height/2},
			{b.X + dx, b.Y},
			{b.X - width + dx, b.Y + height/2},
		}
		fillPolygon(screen, pts, clr)
		strokePolygon(screen, pts, color.White)
	}
}

// IsClicked uses a circle for hit testing since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func fillPolygon(dst *ebiten.Image, pts [][2]float32, clr color.Color) {
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	r, g, bl, a := clr.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func strokePolygon(dst *ebiten.Image, pts [][2]float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], 1, clr, true)
	}
}
