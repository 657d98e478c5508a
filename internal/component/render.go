// internal/component/render.go
package component

import "go-lane-defense/pkg/geom"

// Sprite is a read-only description of one thing to draw.
type Sprite struct {
	Kind      Kind
	Rect      geom.Rect
	Label     string // numeric label drawn over the entity, empty for none
	Highlight bool   // cell under the pointer
}
