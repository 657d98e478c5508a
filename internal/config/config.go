// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	WindowTitle  = "Lane Defense"

	CellGap          = 3 // drawn inside each cell, ignored by the simulation
	CellStrokeWidth  = 1.0
	LabelOffsetX     = 15
	LabelOffsetY     = 30
	ResourceLabelX   = 30
	ResourceLabelY   = 60
	HUDX             = 20
	HUDY             = 20
	HUDLineHeight    = 30
	BannerScale      = 4 // basicfont glyphs are tiny, banners are scaled up
	ButtonWidth      = 160
	ButtonHeight     = 50
	ButtonTextScale  = 2
	ClickCooldown    = 150 // ms between accepted UI clicks
	SpeedButtonX     = 820
	SpeedButtonY     = 50
	SpeedButtonSize  = 16.0
	PauseButtonX     = 760
	PauseButtonY     = 50
	PauseButtonSize  = 14.0
	IndicatorX       = 880
	IndicatorY       = 50
	IndicatorRadius  = 8.0
	MaxStepsPerFrame = 4
	StatsLineHeight  = 20

	// Terminal frontend
	TermFrameMillis = 16 // ~60 steps per second
	TermCellCols    = 8  // terminal columns per grid cell
	TermCellRows    = 3  // terminal rows per grid cell
)

var (
	BackgroundColor    = color.RGBA{255, 255, 255, 255}
	ControlBarColor    = color.RGBA{0, 0, 255, 255}
	CellStrokeColor    = color.RGBA{0, 0, 0, 255}
	DefenderColor      = color.RGBA{0, 0, 255, 255}
	EnemyColor         = color.RGBA{255, 0, 0, 255}
	ProjectileColor    = color.RGBA{0, 0, 0, 255}
	ResourceColor      = color.RGBA{255, 255, 0, 255}
	LabelColor         = color.RGBA{255, 215, 0, 255} // gold
	ResourceLabelColor = color.RGBA{0, 0, 0, 255}
	BannerColor        = color.RGBA{0, 0, 0, 255}
	ButtonColor        = color.RGBA{200, 200, 200, 255}
	ButtonStrokeColor  = color.RGBA{90, 90, 90, 255}
	PauseColor         = color.RGBA{255, 215, 0, 255}
	PlayColor          = color.RGBA{50, 205, 50, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 128}
	RunningStateColor  = color.RGBA{50, 205, 50, 255}
	PausedStateColor   = color.RGBA{255, 215, 0, 255}
	SpeedButtonColors  = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []int{1, 2, 4}
)
