// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Flying obstacle hit-test modes.
const (
	HitboxBounds   = "bounds"   // Bounding rectangle of the drawn triangle
	HitboxTriangle = "triangle" // Exact triangle test
)

// Obstacle variant kinds.
const (
	KindStatic      = "static"
	KindOscillating = "oscillating"
	KindMulti       = "multi"
	KindFlying      = "flying"
)

// DinoConfig contains all configuration for the runner.
type DinoConfig struct {
	World     WorldConfig    `yaml:"world"`
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Stream    StreamConfig   `yaml:"stream"`
}

// WorldConfig defines the logical play field. The ground line sits
// GroundMargin units above the bottom edge.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"`
	TickRate     int     `yaml:"tick_rate"`
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundMargin
}

// ActorConfig defines the player character and its jump physics.
type ActorConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinY         float64 `yaml:"min_y"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Gravity      float64 `yaml:"gravity"`
	DescendStep  float64 `yaml:"descend_step"`
}

// ObstacleConfig defines obstacle sizes, speeds and the enabled variants.
type ObstacleConfig struct {
	BaseSpeed      float64           `yaml:"base_speed"`
	SpeedIncrement float64           `yaml:"speed_increment"`
	Variants       []string          `yaml:"variants"`
	Widths         []int             `yaml:"widths"`
	MinHeight      int               `yaml:"min_height"`
	MaxHeight      int               `yaml:"max_height"`
	Oscillating    OscillatingConfig `yaml:"oscillating"`
	Multi          MultiConfig       `yaml:"multi"`
	Flying         FlyingConfig      `yaml:"flying"`
}

// Speed returns the horizontal speed every obstacle spawns with.
func (o ObstacleConfig) Speed() float64 {
	return o.BaseSpeed + o.SpeedIncrement
}

// OscillatingConfig defines the vertical sawtooth of oscillating obstacles.
type OscillatingConfig struct {
	Step   float64 `yaml:"step"`
	Margin float64 `yaml:"margin"`
}

// MultiConfig defines multi-segment obstacles.
type MultiConfig struct {
	MinSegments int `yaml:"min_segments"`
	MaxSegments int `yaml:"max_segments"`
	MinWidth    int `yaml:"min_width"`
	MaxWidth    int `yaml:"max_width"`
	MinHeight   int `yaml:"min_height"`
	MaxHeight   int `yaml:"max_height"`
	MaxOffset   int `yaml:"max_offset"` // Segments spawn up to this far past the right edge
}

// FlyingConfig defines flying obstacles. MinY and MaxY bound the triangle base.
type FlyingConfig struct {
	MinY   int    `yaml:"min_y"`
	MaxY   int    `yaml:"max_y"`
	Hitbox string `yaml:"hitbox"`
}

// StreamConfig defines the spawn policy.
type StreamConfig struct {
	MinLive   int     `yaml:"min_live"`   // Spawn while fewer obstacles are live
	SpawnLine float64 `yaml:"spawn_line"` // Fraction of the world width the newest obstacle must cross
}

// Validate reports every inconsistency in the configuration.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive")
	check(c.World.GroundMargin >= 0 && c.World.GroundMargin < c.World.Height, "world: ground_margin out of range")
	check(c.World.TickRate > 0, "world: tick_rate must be positive")

	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor: size must be positive")
	check(c.Actor.JumpVelocity < 0, "actor: jump_velocity must be negative")
	check(c.Actor.Gravity > 0, "actor: gravity must be positive")
	check(c.Actor.DescendStep >= 0, "actor: descend_step must not be negative")
	check(c.Actor.MinY <= c.World.GroundY()-c.Actor.Height, "actor: min_y below resting position")

	o := c.Obstacles
	check(o.Speed() > 0, "obstacles: base_speed + speed_increment must be positive")
	check(len(o.Widths) > 0, "obstacles: widths must not be empty")
	for _, w := range o.Widths {
		check(w > 0, "obstacles: width %d must be positive", w)
	}
	check(o.MinHeight > 0 && o.MinHeight <= o.MaxHeight, "obstacles: invalid height range [%d, %d]", o.MinHeight, o.MaxHeight)
	check(o.Oscillating.Step > 0, "obstacles.oscillating: step must be positive")
	check(o.Multi.MinSegments >= 2 && o.Multi.MaxSegments <= 4 && o.Multi.MinSegments <= o.Multi.MaxSegments,
		"obstacles.multi: segments must satisfy 2 <= min <= max <= 4")
	check(o.Multi.MinWidth > 0 && o.Multi.MinWidth <= o.Multi.MaxWidth, "obstacles.multi: invalid width range")
	check(o.Multi.MinHeight > 0 && o.Multi.MinHeight <= o.Multi.MaxHeight, "obstacles.multi: invalid height range")
	check(o.Multi.MaxOffset >= 0, "obstacles.multi: max_offset must not be negative")
	check(o.Flying.MinY <= o.Flying.MaxY, "obstacles.flying: invalid y range")
	check(o.Flying.Hitbox == HitboxBounds || o.Flying.Hitbox == HitboxTriangle,
		"obstacles.flying: unknown hitbox %q", o.Flying.Hitbox)

	check(len(o.Variants) > 0, "obstacles: variants must not be empty")
	known := []string{KindStatic, KindOscillating, KindMulti, KindFlying}
	for _, v := range o.Variants {
		check(slices.Contains(known, v), "obstacles: unknown variant %q", v)
	}

	check(c.Stream.MinLive >= 1, "stream: min_live must be at least 1")
	check(c.Stream.SpawnLine > 0 && c.Stream.SpawnLine <= 1, "stream: spawn_line must be in (0, 1]")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named speed increment.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SpeedIncrementForPreset returns the fixed per-obstacle speed increment of a preset.
func SpeedIncrementForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 3, nil
	case DifficultyNormal:
		return 5, nil
	case DifficultyHard:
		return 8, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q", preset)
	}
}
