// internal/component/resource.go
package component

import (
	"strconv"

	"go-lane-defense/pkg/geom"
)

// ResourceBlock is a pickup that grants Value resources when the pointer hovers it.
type ResourceBlock struct {
	X, Y      float64
	Size      float64
	Value     int
	Collected bool
}

func (r *ResourceBlock) Bounds() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Size, H: r.Size}
}

func (r *ResourceBlock) Kind() Kind { return KindResource }

func (r *ResourceBlock) Sprite() Sprite {
	return Sprite{Kind: KindResource, Rect: r.Bounds(), Label: strconv.Itoa(r.Value)}
}
