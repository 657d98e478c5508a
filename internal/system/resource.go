// internal/system/resource.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/geom"
)

// ResourceSystem collects resource blocks under the pointer or under an enemy.
type ResourceSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewResourceSystem(eventDispatcher *event.Dispatcher) *ResourceSystem {
	return &ResourceSystem{eventDispatcher: eventDispatcher}
}

func (s *ResourceSystem) Update(w *entity.World) {
	for _, r := range w.Resources {
		if !r.Collected && geom.Collision(w.Pointer, r) {
			r.Collected = true
			s.collected(r, true)
		}
		for _, e := range w.Enemies {
			if geom.Collision(r, e) {
				if !r.Collected {
					s.collected(r, false)
				}
				r.Collected = true
			}
		}
	}
	w.Resources = entity.Compact(w.Resources, func(r *component.ResourceBlock) bool { return !r.Collected })
}

func (s *ResourceSystem) collected(r *component.ResourceBlock, byPointer bool) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ResourceCollected,
		Data: event.ResourceCollectedData{Value: r.Value, ByPointer: byPointer},
	})
}
