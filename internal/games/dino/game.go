// Package dino implements a Chrome Dino-style endless runner.
// The actor jumps over or ducks under a stream of obstacles; every obstacle
// that gets past the actor scores a point and the first collision ends the run.
package dino

import (
	"fmt"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/storage"
)

// ScoreSaver persists the result of a finished run and returns the updated
// high-score list.
type ScoreSaver interface {
	SaveRun(run storage.Run) ([]int, error)
}

var instructions = []string{
	"Press UP to jump.",
	"Press DOWN to descend quickly.",
	"Avoid obstacles!",
	"Press any key to start.",
}

// Game is one runner session: the instructions screen, any number of runs
// and the game-over screen between them.
type Game struct {
	cfg     config.DinoConfig
	runtime core.RuntimeConfig
	store   ScoreSaver

	actor  *Actor
	stream *Stream

	phase      core.Phase
	score      int
	tickCount  int
	paused     bool
	overTicks  int   // Ticks spent on the game-over screen
	highScores []int // Top list loaded after the last run
}

// New creates a session using cfg. store may be nil, in which case finished
// runs are not persisted.
func New(cfg config.DinoConfig, store ScoreSaver) *Game {
	return &Game{cfg: cfg, store: store}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}

// Reset starts a new session on the instructions screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScores = nil
	g.startRun()
	g.phase = core.PhaseInstructions
}

// startRun puts a grounded actor in an empty world.
func (g *Game) startRun() {
	g.actor = NewActor(g.cfg.Actor, g.cfg.World)
	if g.stream == nil {
		g.stream = NewStream(g.runtime.Seed, &g.cfg)
	} else {
		g.stream.Reset(g.runtime.Seed)
	}
	g.phase = core.PhasePlaying
	g.score = 0
	g.tickCount = 0
	g.paused = false
	g.overTicks = 0
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseInstructions:
		if in.Has(core.ActionAnyKey) {
			g.phase = core.PhasePlaying
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			if err := g.tick(in); err != nil {
				return core.StepResult{State: g.State(), Err: err}
			}
		}

	case core.PhaseGameOver:
		g.overTicks++
		if g.overTicks <= g.graceTicks() {
			break
		}
		switch {
		case in.Has(core.ActionRestart):
			g.runtime.Seed++
			g.startRun()
		case in.Has(core.ActionAnyKey):
			g.phase = core.PhaseTerminal
		}
	}

	return core.StepResult{State: g.State()}
}

// graceTicks is how long the game-over screen ignores keys.
func (g *Game) graceTicks() int {
	return g.cfg.World.TickRate / 2
}

// tick runs one simulation step: input, spawn, move, score, prune, collide.
func (g *Game) tick(in core.InputFrame) error {
	g.tickCount++

	g.actor.ApplyInput(in.Has(core.ActionJump), in.Has(core.ActionDescend))

	if _, err := g.stream.MaybeSpawn(); err != nil {
		return err
	}
	g.stream.Advance()
	g.score += g.stream.Score(g.actor.X)
	g.stream.Prune()

	if _, hit := g.stream.Collision(g.actor.Rect()); hit {
		return g.endRun()
	}
	return nil
}

// endRun persists the score and switches to the game-over screen.
func (g *Game) endRun() error {
	g.phase = core.PhaseGameOver
	g.overTicks = 0
	g.highScores = []int{g.score}
	if g.store == nil {
		return nil
	}

	top, err := g.store.SaveRun(storage.Run{
		Score: g.score,
		Ticks: g.tickCount,
		Seed:  g.runtime.Seed,
	})
	if err != nil {
		return fmt.Errorf("dino: save score: %w", err)
	}
	g.highScores = top
	return nil
}

// HighScores returns the list shown on the game-over screen.
func (g *Game) HighScores() []int {
	return g.highScores
}

// Actor returns the player character.
func (g *Game) Actor() *Actor {
	return g.actor
}

// Render draws the current screen.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorWhite)

	w, h := g.cfg.World.Width, g.cfg.World.Height

	switch g.phase {
	case core.PhaseInstructions:
		for i, line := range instructions {
			dst.DrawText(w/2-150, h/2-50+float64(i)*30, line, core.ColorBlack)
		}

	case core.PhasePlaying:
		ground := g.cfg.World.GroundY()
		dst.FillRect(core.NewRect(0, ground, w, 2), core.ColorGray)
		dst.FillRect(g.actor.Rect(), core.ColorBlack)
		g.stream.Draw(dst)
		dst.DrawText(10, 10, fmt.Sprintf("Score: %d", g.score), core.ColorBlack)
		if g.paused {
			dst.DrawText(w/2-30, h/2-50, "PAUSED", core.ColorBlack)
			dst.DrawText(w/2-80, h/2-20, "Press P to resume", core.ColorGray)
		}

	case core.PhaseGameOver:
		dst.DrawText(w/2-80, h/2-50, "Game Over!", core.ColorBlack)
		lines := []string{"High Scores:"}
		for _, s := range g.highScores {
			lines = append(lines, fmt.Sprintf("%d", s))
		}
		for i, line := range lines {
			dst.DrawText(w/2-100, h/2+float64(i)*30, line, core.ColorBlack)
		}
		dst.DrawText(10, h-30, fmt.Sprintf("Score: %d  |  R: restart  any key: quit", g.score), core.ColorGray)
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Ticks:    g.tickCount,
		GameOver: g.phase == core.PhaseGameOver || g.phase == core.PhaseTerminal,
		Paused:   g.paused,
	}
}
