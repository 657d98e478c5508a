// pkg/render/color.go
package render

import (
	"image/color"

	"go-lane-defense/internal/component"
)

// SpriteColors holds the fill and label colours for every entity kind.
type SpriteColors struct {
	Defender      color.RGBA
	Enemy         color.RGBA
	Projectile    color.RGBA
	Resource      color.RGBA
	CellStroke    color.RGBA
	Label         color.RGBA // health labels
	ResourceLabel color.RGBA
}

// Fill returns the fill colour for kind. Cells are never filled.
func (c SpriteColors) Fill(kind component.Kind) (color.RGBA, bool) {
	switch kind {
	case component.KindDefender:
		return c.Defender, true
	case component.KindEnemy:
		return c.Enemy, true
	case component.KindProjectile:
		return c.Projectile, true
	case component.KindResource:
		return c.Resource, true
	}
	return color.RGBA{}, false
}

// LabelColor returns the colour used for a sprite's numeric label.
func (c SpriteColors) LabelColor(kind component.Kind) color.RGBA {
	if kind == component.KindResource {
		return c.ResourceLabel
	}
	return c.Label
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
