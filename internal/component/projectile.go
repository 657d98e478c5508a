// internal/component/projectile.go
package component

import "go-lane-defense/pkg/geom"

// Projectile flies right in a straight line and hits the first enemy it touches.
type Projectile struct {
	X, Y  float64
	Size  float64
	Speed float64
	Power float64
}

func (p *Projectile) Bounds() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

func (p *Projectile) Sprite() Sprite {
	return Sprite{Kind: KindProjectile, Rect: p.Bounds()}
}

// Advance moves the projectile one frame to the right.
func (p *Projectile) Advance() {
	p.X += p.Speed
}
