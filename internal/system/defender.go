// internal/system/defender.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/geom"
)

// DefenderSystem ticks defender timers, fires projectiles and resolves
// defender/enemy contact.
type DefenderSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewDefenderSystem(eventDispatcher *event.Dispatcher) *DefenderSystem {
	return &DefenderSystem{eventDispatcher: eventDispatcher}
}

func (s *DefenderSystem) Update(w *entity.World) {
	t := w.Tuning
	anyRule := t.BlockingRule != defs.BlockLastPair
	if anyRule {
		for _, e := range w.Enemies {
			e.IsColliding = false
		}
	}

	for _, d := range w.Defenders {
		d.Timer++
		if d.Timer%t.FireInterval == 0 && w.EnemyInLane(d.Y) {
			s.fire(w, d)
		}

		for _, e := range w.Enemies {
			if geom.Collision(d, e) {
				e.IsColliding = true
				d.TakeDamage(t.ContactDamage)
			} else if !anyRule {
				e.IsColliding = false
			}

			if !d.Alive() {
				// The enemy that finished the defender walks on unless someone else holds it.
				e.IsColliding = anyRule && blockedByOther(w, e, d)
				s.eventDispatcher.Dispatch(event.Event{Type: event.DefenderDestroyed, Data: d})
				break
			}
		}
	}

	w.Defenders = entity.Compact(w.Defenders, (*component.Defender).Alive)
}

func (s *DefenderSystem) fire(w *entity.World, d *component.Defender) {
	t := w.Tuning
	p := &component.Projectile{
		X:     d.X + t.ProjectileOffset,
		Y:     d.Y + t.ProjectileOffset,
		Size:  t.ProjectileSize,
		Speed: t.ProjectileSpeed,
		Power: t.ProjectilePower,
	}
	w.Projectiles = append(w.Projectiles, p)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: p})
}

func blockedByOther(w *entity.World, e *component.Enemy, skip *component.Defender) bool {
	for _, d := range w.Defenders {
		if d != skip && d.Alive() && geom.Collision(d, e) {
			return true
		}
	}
	return false
}
