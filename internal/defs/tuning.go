// internal/defs/tuning.go
package defs

import (
	"errors"
	"fmt"
)

// BlockingRule selects how an enemy's blocked flag is derived from defender contact.
type BlockingRule string

const (
	// BlockAny blocks an enemy touching at least one defender.
	BlockAny BlockingRule = "any"
	// BlockLastPair lets the last defender checked decide, even if an earlier one touched it.
	BlockLastPair BlockingRule = "last-pair"
)

// Tuning holds every gameplay constant. All distances are in pixels, all timings in frames.
type Tuning struct {
	CellSize     float64 `json:"cell_size"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`

	// Economy
	InitialResources float64 `json:"initial_resources"`
	DefenderCost     float64 `json:"defender_cost"`
	ScorePerLevel    float64 `json:"score_per_level"` // score needed per difficulty level
	RewardDivisor    float64 `json:"reward_divisor"`  // kill reward = floor(maxHealth / divisor)

	// Defenders
	DefenderHealth   float64 `json:"defender_health"`
	ContactDamage    float64 `json:"contact_damage"`
	FireInterval     int     `json:"fire_interval"`
	ProjectileOffset float64 `json:"projectile_offset"`

	// Projectiles
	ProjectileSize  float64 `json:"projectile_size"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	ProjectilePower float64 `json:"projectile_power"`

	// Enemy waves
	BaseEnemyInterval   int          `json:"base_enemy_interval"`
	MinEnemyInterval    int          `json:"min_enemy_interval"`
	EnemyIntervalStep   int          `json:"enemy_interval_step"`
	WaveSize            int          `json:"wave_size"`
	HardWaveSize        int          `json:"hard_wave_size"`
	EnemyHealth         float64      `json:"enemy_health"`
	EnemyHealthPerLevel float64      `json:"enemy_health_per_level"`
	EnemySpeedMin       float64      `json:"enemy_speed_min"`
	EnemySpeedMax       float64      `json:"enemy_speed_max"`
	EnemySpeedGrowth    float64      `json:"enemy_speed_growth"` // added to speed every frame per difficulty level
	MaxEnemySpeed       float64      `json:"max_enemy_speed"`    // 0 means uncapped
	BlockingRule        BlockingRule `json:"blocking_rule"`

	// Resource blocks
	ResourceValueMin      int `json:"resource_value_min"`
	ResourceValueMax      int `json:"resource_value_max"`
	ResourceValueStep     int `json:"resource_value_step"`
	ResourceSpawnDelay    int `json:"resource_spawn_delay"`
	ResourceSpawnJitter   int `json:"resource_spawn_jitter"`
	ResourceSpawnAttempts int `json:"resource_spawn_attempts"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		CellSize:     100,
		CanvasWidth:  900,
		CanvasHeight: 600,

		InitialResources: 300,
		DefenderCost:     100,
		ScorePerLevel:    100,
		RewardDivisor:    10,

		DefenderHealth:   100,
		ContactDamage:    0.2,
		FireInterval:     100,
		ProjectileOffset: 70,

		ProjectileSize:  10,
		ProjectileSpeed: 5,
		ProjectilePower: 20,

		BaseEnemyInterval:   600,
		MinEnemyInterval:    150,
		EnemyIntervalStep:   60,
		WaveSize:            1,
		HardWaveSize:        2,
		EnemyHealth:         100,
		EnemyHealthPerLevel: 10,
		EnemySpeedMin:       0.4,
		EnemySpeedMax:       0.6,
		EnemySpeedGrowth:    0.002,
		MaxEnemySpeed:       0,
		BlockingRule:        BlockAny,

		ResourceValueMin:      40,
		ResourceValueMax:      90,
		ResourceValueStep:     10,
		ResourceSpawnDelay:    1000,
		ResourceSpawnJitter:   1000,
		ResourceSpawnAttempts: 10,
	}
}

// Columns is the number of grid columns on the field.
func (t Tuning) Columns() int {
	return int(t.CanvasWidth / t.CellSize)
}

// Rows is the number of grid rows including the control bar.
func (t Tuning) Rows() int {
	return int(t.CanvasHeight / t.CellSize)
}

// Lanes is the number of playable rows below the control bar.
func (t Tuning) Lanes() int {
	return t.Rows() - 1
}

var errInvalidTuning = errors.New("invalid tuning")

// Validate checks that the tuning describes a playable field.
func (t Tuning) Validate() error {
	switch {
	case t.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", errInvalidTuning)
	case t.Columns() < 1:
		return fmt.Errorf("%w: canvas_width must fit at least one cell", errInvalidTuning)
	case t.Lanes() < 1:
		return fmt.Errorf("%w: canvas_height must fit the control bar and one lane", errInvalidTuning)
	case t.FireInterval <= 0:
		return fmt.Errorf("%w: fire_interval must be positive", errInvalidTuning)
	case t.MinEnemyInterval <= 0 || t.BaseEnemyInterval < t.MinEnemyInterval:
		return fmt.Errorf("%w: enemy intervals must satisfy 0 < min <= base", errInvalidTuning)
	case t.EnemyIntervalStep < 0:
		return fmt.Errorf("%w: enemy_interval_step must not be negative", errInvalidTuning)
	case t.ScorePerLevel <= 0 || t.RewardDivisor <= 0:
		return fmt.Errorf("%w: score_per_level and reward_divisor must be positive", errInvalidTuning)
	case t.EnemySpeedMax < t.EnemySpeedMin:
		return fmt.Errorf("%w: enemy_speed_max below enemy_speed_min", errInvalidTuning)
	case t.ResourceValueStep <= 0 || t.ResourceValueMax < t.ResourceValueMin:
		return fmt.Errorf("%w: resource value range is empty", errInvalidTuning)
	case t.ResourceSpawnJitter <= 0 || t.ResourceSpawnAttempts <= 0:
		return fmt.Errorf("%w: resource spawn jitter and attempts must be positive", errInvalidTuning)
	case t.BlockingRule != BlockAny && t.BlockingRule != BlockLastPair:
		return fmt.Errorf("%w: unknown blocking_rule %q", errInvalidTuning, t.BlockingRule)
	}
	return nil
}
