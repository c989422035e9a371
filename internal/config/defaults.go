package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in runner configuration.
// It matches defaults/dino.yaml and is used when the embedded YAML cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundMargin: 20,
			TickRate:     30,
		},
		Actor: ActorConfig{
			X:            50,
			Width:        40,
			Height:       60,
			MinY:         0,
			JumpVelocity: -12,
			Gravity:      0.5,
			DescendStep:  40,
		},
		Obstacles: ObstacleConfig{
			BaseSpeed:      5,
			SpeedIncrement: 5,
			Variants:       []string{KindStatic, KindOscillating, KindMulti, KindFlying},
			Widths:         []int{20, 30},
			MinHeight:      30,
			MaxHeight:      60,
			Oscillating: OscillatingConfig{
				Step:   2,
				Margin: 50,
			},
			Multi: MultiConfig{
				MinSegments: 2,
				MaxSegments: 4,
				MinWidth:    20,
				MaxWidth:    30,
				MinHeight:   30,
				MaxHeight:   50,
				MaxOffset:   100,
			},
			Flying: FlyingConfig{
				MinY:   50,
				MaxY:   200,
				Hitbox: HitboxBounds,
			},
		},
		Stream: StreamConfig{
			MinLive:   2,
			SpawnLine: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
