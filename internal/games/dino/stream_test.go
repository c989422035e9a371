package dino

import (
	"testing"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

func TestStreamSpawnPolicy(t *testing.T) {
	cfg := config.DefaultDinoConfig()

	tests := []struct {
		name      string
		positions []float64
		spawn     bool
	}{
		{"empty", nil, true},
		{"one live", []float64{700}, true},
		{"two right of midline", []float64{500, 800}, false},
		{"newest on midline", []float64{100, 400}, false},
		{"newest past midline", []float64{100, 399}, true},
		{"only newest counts", []float64{100, 700}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStream(1, &cfg)
			for _, x := range tc.positions {
				s.Add(newTestStatic(x, 350, 20, 30))
			}
			if got := s.ShouldSpawn(); got != tc.spawn {
				t.Errorf("ShouldSpawn() = %v, expected %v", got, tc.spawn)
			}

			before := s.Len()
			o, err := s.MaybeSpawn()
			if err != nil {
				t.Fatalf("MaybeSpawn() failed: %v", err)
			}
			if (o != nil) != tc.spawn || s.Len() != before+boolToInt(tc.spawn) {
				t.Errorf("MaybeSpawn() spawned %v, len %d -> %d", o, before, s.Len())
			}
			if o != nil && o.X() < cfg.World.Width {
				t.Errorf("new obstacle at x=%v, expected at or past the right edge", o.X())
			}
		})
	}
}

func TestStreamEmptySpawnsWithoutMinimum(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Stream.MinLive = 0
	s := NewStream(1, &cfg)

	if !s.ShouldSpawn() {
		t.Fatal("an empty stream should always spawn")
	}
	if _, err := s.MaybeSpawn(); err != nil || s.Len() != 1 {
		t.Fatalf("MaybeSpawn() = %v, len %d", err, s.Len())
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestStreamSpeedIsFixedAtSpawn(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.Variants = []string{config.KindStatic}
	s := NewStream(4, &cfg)

	o, err := s.Spawn()
	if err != nil {
		t.Fatal(err)
	}
	x := o.X()
	s.Advance()
	if got := x - o.X(); got != cfg.Obstacles.BaseSpeed+cfg.Obstacles.SpeedIncrement {
		t.Errorf("obstacle moved %v per tick, expected %v", got, cfg.Obstacles.Speed())
	}
}

func TestStreamScoresEachObstacleOnce(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(1, &cfg)
	actorX := cfg.Actor.X

	s.Add(newTestStatic(45, 350, 20, 30))
	total := 0
	for i := 0; i < 10; i++ {
		s.Advance()
		total += s.Score(actorX)
	}
	if total != 1 {
		t.Errorf("obstacle scored %d times, expected once", total)
	}
}

func TestStreamScoreIsStrict(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(1, &cfg)

	// Right edge exactly on the actor's x does not score
	s.Add(newTestStatic(30, 350, 20, 30))
	if n := s.Score(50); n != 0 {
		t.Errorf("right edge == actor x scored %d", n)
	}
	if n := s.Score(50.5); n != 1 {
		t.Errorf("right edge < actor x scored %d", n)
	}
}

func TestStreamMultiScoresOnDerivedExtent(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(1, &cfg)
	m := &Multi{
		base: base{kind: config.KindMulti, speed: 10},
		Segments: []core.Rect{
			core.NewRect(100, 330, 30, 50),
			core.NewRect(140, 355, 25, 25),
		},
	}
	s.Add(m)

	// Derived extent ends at 100+55 = 155, not at the rightmost edge 165
	if n := s.Score(155); n != 0 {
		t.Errorf("scored at actor x 155: %d", n)
	}
	if n := s.Score(156); n != 1 {
		t.Errorf("expected score once derived extent is passed, got %d", n)
	}
	if !m.Passed() {
		t.Error("multi should be marked passed")
	}
}

func TestStreamPrune(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(1, &cfg)

	gone := newTestStatic(-31, 350, 30, 30)
	edge := newTestStatic(-30, 350, 30, 30) // right edge at 0 is still live
	live := newTestStatic(300, 350, 30, 30)
	s.Add(gone)
	s.Add(edge)
	s.Add(live)

	s.Prune()

	obs := s.Obstacles()
	if len(obs) != 2 || obs[0] != Obstacle(edge) || obs[1] != Obstacle(live) {
		t.Errorf("Prune() kept %v", obs)
	}
}

func TestStreamCollisionReturnsFirstHit(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(1, &cfg)
	actor := core.NewRect(50, 320, 40, 60)

	s.Add(newTestStatic(200, 350, 20, 30))
	if _, hit := s.Collision(actor); hit {
		t.Fatal("no obstacle overlaps the actor")
	}

	// Touching edges do not collide
	s.Add(newTestStatic(90, 350, 20, 30))
	if _, hit := s.Collision(actor); hit {
		t.Fatal("touching edge should not collide")
	}

	first := newTestStatic(80, 350, 20, 30)
	s.Add(first)
	s.Add(newTestStatic(60, 350, 20, 30))
	o, hit := s.Collision(actor)
	if !hit || o != Obstacle(first) {
		t.Errorf("Collision() = %v, %v; expected the first overlapping obstacle", o, hit)
	}
}

func TestStreamResetIsReproducible(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewStream(77, &cfg)

	kinds := func() []string {
		var out []string
		for i := 0; i < 20; i++ {
			o, err := s.Spawn()
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, o.Kind())
		}
		return out
	}

	first := kinds()
	s.Reset(77)
	if s.Len() != 0 {
		t.Fatalf("Reset left %d obstacles", s.Len())
	}
	second := kinds()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("spawn %d: %q vs %q after reseed", i, first[i], second[i])
		}
	}
}
