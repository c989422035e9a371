package dino

import (
	"math"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Actor is the player-controlled runner. Y is the top edge in world units;
// the actor rests on the ground line when not airborne.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Vertical velocity, negative = up
	Airborne      bool

	cfg   config.ActorConfig
	restY float64
}

// NewActor places a grounded actor on the ground line of the world.
func NewActor(cfg config.ActorConfig, world config.WorldConfig) *Actor {
	a := &Actor{
		X:      cfg.X,
		Width:  cfg.Width,
		Height: cfg.Height,
		cfg:    cfg,
		restY:  world.GroundY() - cfg.Height,
	}
	a.Y = a.restY
	return a
}

// RestY returns the y coordinate of the actor standing on the ground.
func (a *Actor) RestY() float64 {
	return a.restY
}

// ApplyInput advances the actor by one tick.
//
// A jump starts only from the ground; presses while airborne are ignored.
// Descend pushes the actor down immediately, airborne or not, and never below
// the ground line.
func (a *Actor) ApplyInput(jump, descend bool) {
	if jump && !a.Airborne {
		a.Airborne = true
		a.Velocity = a.cfg.JumpVelocity
	}

	if descend {
		a.Y = math.Min(a.Y+a.cfg.DescendStep, a.restY)
	}

	if a.Airborne {
		a.Y += a.Velocity
		a.Velocity += a.cfg.Gravity
		if a.Y >= a.restY {
			a.Y = a.restY
			a.Velocity = 0
			a.Airborne = false
		}
	}

	if a.Y < a.cfg.MinY {
		a.Y = a.cfg.MinY
		a.Velocity = math.Max(a.Velocity, 0)
	}
}

// Rect returns the actor's collision box.
func (a *Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}
