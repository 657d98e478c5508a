// pkg/geom/rect.go
package geom

import "math"

// PointerSize is the width and height of the hit box used for the pointer.
const PointerSize = 0.1

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Bounds implements Boxed.
func (r Rect) Bounds() Rect {
	return r
}

// Overlaps reports whether a and b intersect. Touching edges count as overlap.
func Overlaps(a, b Rect) bool {
	return !(a.X > b.Right() ||
		a.Right() < b.X ||
		a.Y > b.Bottom() ||
		a.Bottom() < b.Y)
}

// Boxed is anything that occupies a rectangle on the field.
type Boxed interface {
	Bounds() Rect
}

// absentable is implemented by inputs that may be missing, like the pointer.
type absentable interface {
	Absent() bool
}

// Collision reports whether a and b overlap. A nil or absent argument never collides.
func Collision(a, b Boxed) bool {
	if isAbsent(a) || isAbsent(b) {
		return false
	}
	return Overlaps(a.Bounds(), b.Bounds())
}

func isAbsent(b Boxed) bool {
	if b == nil {
		return true
	}
	if p, ok := b.(absentable); ok {
		return p.Absent()
	}
	return false
}

// Pointer is the player's cursor in play-field coordinates.
type Pointer struct {
	X, Y   float64
	Active bool
}

// NewPointer returns an active pointer at (x, y). Non-finite input yields an inactive pointer.
func NewPointer(x, y float64) Pointer {
	if !finite(x) || !finite(y) {
		return Pointer{}
	}
	return Pointer{X: x, Y: y, Active: true}
}

// Bounds implements Boxed.
func (p Pointer) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: PointerSize, H: PointerSize}
}

// Absent reports whether the pointer is off the field.
func (p Pointer) Absent() bool {
	return !p.Active || !finite(p.X) || !finite(p.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
