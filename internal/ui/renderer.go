// internal/ui/renderer.go
package ui

import (
	"fmt"
	"math"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const labelScale = 2

// Renderer draws a game snapshot onto an ebiten image.
type Renderer struct {
	cellSize      float64
	width, height int
	colors        render.SpriteColors
}

func NewRenderer(cellSize float64, width, height int, colors render.SpriteColors) *Renderer {
	return &Renderer{cellSize: cellSize, width: width, height: height, colors: colors}
}

// Size returns the canvas size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Contains reports whether screen position (x, y) lies on the canvas.
func (r *Renderer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

// DefaultColors builds the sprite palette from the config colours.
func DefaultColors() render.SpriteColors {
	return render.SpriteColors{
		Defender:      config.DefenderColor,
		Enemy:         config.EnemyColor,
		Projectile:    config.ProjectileColor,
		Resource:      config.ResourceColor,
		CellStroke:    config.CellStrokeColor,
		Label:         config.LabelColor,
		ResourceLabel: config.ResourceLabelColor,
	}
}

// Draw renders the control bar, the field and the HUD. Nothing but the
// background is drawn outside the Running phase.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	if snap.Phase != app.PhaseRunning {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(r.cellSize), config.ControlBarColor, false)

	for _, sp := range snap.Sprites {
		r.drawSprite(screen, sp)
	}
	r.drawHUD(screen, snap)
}

func (r *Renderer) drawSprite(screen *ebiten.Image, sp component.Sprite) {
	x, y := float32(sp.Rect.X), float32(sp.Rect.Y)
	w, h := float32(sp.Rect.W), float32(sp.Rect.H)

	switch sp.Kind {
	case component.KindCell:
		if sp.Highlight {
			vector.StrokeRect(screen, x, y, w, h, config.CellStrokeWidth, r.colors.CellStroke, false)
		}
		return
	case component.KindProjectile:
		fill, _ := r.colors.Fill(sp.Kind)
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, fill, true)
		return
	}

	fill, ok := r.colors.Fill(sp.Kind)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	if sp.Label == "" {
		return
	}

	lx, ly := float64(config.LabelOffsetX), float64(config.LabelOffsetY)
	if sp.Kind == component.KindResource {
		lx, ly = config.ResourceLabelX, config.ResourceLabelY
	}
	// Offsets address the text baseline.
	DrawText(screen, sp.Label, sp.Rect.X+lx, sp.Rect.Y+ly-glyphAscent*labelScale, labelScale, r.colors.LabelColor(sp.Kind))
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	DrawText(screen, fmt.Sprintf("Resources: %.0f", math.Floor(snap.Resources)),
		config.HUDX, config.HUDY-glyphAscent, labelScale, config.LabelColor)
	DrawText(screen, fmt.Sprintf("Score: %.0f", math.Floor(snap.Score)),
		config.HUDX, config.HUDY+config.HUDLineHeight-glyphAscent, labelScale, config.LabelColor)
}

// DrawBanner draws large centred text, like "GAME OVER".
func DrawBanner(screen *ebiten.Image, s string, cy float64) {
	w := float64(screen.Bounds().Dx())
	DrawTextCentered(screen, s, w/2, cy, config.BannerScale, config.BannerColor)
}
