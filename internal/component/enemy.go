// internal/component/enemy.go
package component

import (
	"math"

	"go-lane-defense/pkg/geom"
)

// Enemy walks left along its lane until it is destroyed or crosses the field.
type Enemy struct {
	X, Y        float64 // X is continuous, Y is a lane row
	Size        float64
	Speed       float64 // pixels per frame while unblocked
	Movement    float64 // distance actually moved on the last frame
	Health      float64
	MaxHealth   float64
	IsColliding bool // touching a defender this frame
}

func NewEnemy(x, y, size, speed, health float64) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		Size:      size,
		Speed:     speed,
		Movement:  speed,
		Health:    health,
		MaxHealth: health,
	}
}

func (e *Enemy) Bounds() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

func (e *Enemy) Kind() Kind { return KindEnemy }

func (e *Enemy) Sprite() Sprite {
	return Sprite{Kind: KindEnemy, Rect: e.Bounds(), Label: floorLabel(e.Health)}
}

// Advance moves the enemy left, or holds it in place while blocked.
func (e *Enemy) Advance() {
	if e.IsColliding {
		e.Movement = 0
	} else {
		e.Movement = e.Speed
	}
	e.X -= e.Movement
}

// Dead reports whether the enemy has been destroyed.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Breached reports whether the enemy has crossed the left edge of the field.
func (e *Enemy) Breached() bool {
	return e.X < 0
}

// Reward is the resources and score granted for destroying the enemy.
func (e *Enemy) Reward(divisor float64) float64 {
	return math.Floor(e.MaxHealth / divisor)
}

// InLane reports whether the enemy walks the row starting at y.
func (e *Enemy) InLane(y float64) bool {
	return e.Y == y
}
