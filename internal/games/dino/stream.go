package dino

import (
	"math/rand"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Stream handles spawning, movement, scoring and removal of obstacles.
// Obstacles are kept in spawn order.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.DinoConfig
}

// NewStream creates an empty stream with the given RNG seed.
func NewStream(seed int64, cfg *config.DinoConfig) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
}

// ShouldSpawn reports whether the spawn policy asks for a new obstacle:
// fewer than MinLive obstacles are live, or the newest one has crossed the
// spawn line.
func (s *Stream) ShouldSpawn() bool {
	if len(s.obstacles) == 0 || len(s.obstacles) < s.cfg.Stream.MinLive {
		return true
	}
	last := s.obstacles[len(s.obstacles)-1]
	return last.X() < s.cfg.World.Width*s.cfg.Stream.SpawnLine
}

// MaybeSpawn appends a new obstacle of a random enabled variant if the spawn
// policy allows it.
func (s *Stream) MaybeSpawn() (Obstacle, error) {
	if !s.ShouldSpawn() {
		return nil, nil
	}
	return s.Spawn()
}

// Spawn appends a new obstacle unconditionally.
func (s *Stream) Spawn() (Obstacle, error) {
	kinds := s.cfg.Obstacles.Variants
	kind := kinds[s.rng.Intn(len(kinds))]

	o, err := createVariant(kind, spawner{
		cfg:   s.cfg,
		rng:   s.rng,
		speed: s.cfg.Obstacles.Speed(),
	})
	if err != nil {
		return nil, err
	}
	s.obstacles = append(s.obstacles, o)
	return o, nil
}

// Add appends an already built obstacle.
func (s *Stream) Add(o Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

// Advance moves every obstacle by one tick.
func (s *Stream) Advance() {
	for _, o := range s.obstacles {
		o.Advance()
	}
}

// Score marks obstacles whose right edge is strictly left of actorX as passed
// and returns how many were newly passed. Each obstacle scores at most once.
func (s *Stream) Score(actorX float64) int {
	n := 0
	for _, o := range s.obstacles {
		if o.Passed() {
			continue
		}
		if o.X()+o.Width() < actorX {
			o.MarkPassed()
			n++
		}
	}
	return n
}

// Prune removes expired obstacles, preserving order.
func (s *Stream) Prune() {
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.Expired() {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = live
}

// Collision returns the first obstacle overlapping the actor, if any.
func (s *Stream) Collision(actor core.Rect) (Obstacle, bool) {
	for _, o := range s.obstacles {
		if Collides(o, actor) {
			return o, true
		}
	}
	return nil, false
}

// Obstacles returns the live obstacles in spawn order.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}

// Draw renders every live obstacle.
func (s *Stream) Draw(dst core.Surface) {
	for _, o := range s.obstacles {
		o.Draw(dst)
	}
}
