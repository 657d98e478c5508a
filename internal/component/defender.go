// internal/component/defender.go
package component

import (
	"math"
	"strconv"

	"go-lane-defense/pkg/geom"
)

// Defender is a stationary tower placed by the player on a grid cell.
type Defender struct {
	X, Y   float64 // top-left corner, always grid aligned
	Size   float64
	Health float64
	Timer  int // frames since placement
}

func NewDefender(x, y, size, health float64) *Defender {
	return &Defender{X: x, Y: y, Size: size, Health: health}
}

func (d *Defender) Bounds() geom.Rect {
	return geom.Rect{X: d.X, Y: d.Y, W: d.Size, H: d.Size}
}

func (d *Defender) Kind() Kind { return KindDefender }

func (d *Defender) Sprite() Sprite {
	return Sprite{Kind: KindDefender, Rect: d.Bounds(), Label: floorLabel(d.Health)}
}

// Alive reports whether the defender still holds its cell.
func (d *Defender) Alive() bool {
	return d.Health > 0
}

// Occupies reports whether the defender stands exactly on cell (x, y).
func (d *Defender) Occupies(x, y float64) bool {
	return d.X == x && d.Y == y
}

// TakeDamage lowers health by amount and reports whether the defender died.
func (d *Defender) TakeDamage(amount float64) bool {
	d.Health -= amount
	return !d.Alive()
}

func floorLabel(v float64) string {
	return strconv.Itoa(int(math.Floor(v)))
}
