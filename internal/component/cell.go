// internal/component/cell.go
package component

import "go-lane-defense/pkg/geom"

// Cell is a static grid tile. It only matters as a placement highlight.
type Cell struct {
	X, Y float64
	Size float64
}

func (c *Cell) Bounds() geom.Rect {
	return geom.Rect{X: c.X, Y: c.Y, W: c.Size, H: c.Size}
}

func (c *Cell) Kind() Kind { return KindCell }

func (c *Cell) Sprite() Sprite {
	return Sprite{Kind: KindCell, Rect: c.Bounds()}
}
