// internal/system/projectile.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/pkg/geom"
)

// ProjectileSystem flies projectiles and applies their damage.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Update moves every projectile right. A projectile damages only the first
// enemy it touches, in enemy order, and is then removed; one that passes
// canvasWidth - cellSize is removed as well.
func (s *ProjectileSystem) Update(w *entity.World) {
	limit := w.Tuning.CanvasWidth - w.Tuning.CellSize
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Advance()

		hit := false
		for _, e := range w.Enemies {
			if geom.Collision(p, e) {
				e.Health -= p.Power
				hit = true
				break
			}
		}
		if hit || p.X > limit {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = kept
}
