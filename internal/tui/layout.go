// internal/tui/layout.go
package tui

import (
	"math"

	"go-lane-defense/pkg/geom"
)

// Layout maps the play field onto terminal character cells. Every grid cell
// of CellSize pixels becomes CellCols x CellRows characters.
type Layout struct {
	CellSize float64
	CellCols int
	CellRows int
}

// Size returns the terminal size in characters needed to show a field of
// width x height pixels.
func (l Layout) Size(width, height float64) (int, int) {
	return l.col(width), l.row(height)
}

// ToField converts a terminal position to the centre of that character in
// field coordinates.
func (l Layout) ToField(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * l.CellSize / float64(l.CellCols)
	y := (float64(row) + 0.5) * l.CellSize / float64(l.CellRows)
	return x, y
}

// ToScreen returns the character span covered by r as [c0, c1) x [r0, r1).
// Anything visible covers at least one character.
func (l Layout) ToScreen(r geom.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(r.X * float64(l.CellCols) / l.CellSize))
	r0 = int(math.Floor(r.Y * float64(l.CellRows) / l.CellSize))
	c1 = l.col(r.Right())
	r1 = l.row(r.Bottom())
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func (l Layout) col(x float64) int {
	return int(math.Ceil(x * float64(l.CellCols) / l.CellSize))
}

func (l Layout) row(y float64) int {
	return int(math.Ceil(y * float64(l.CellRows) / l.CellSize))
}
