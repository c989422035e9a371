// Package window runs the runner in a desktop window using Ebitengine.
// The window's logical size is the world size, so draw commands map 1:1 to pixels.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dinorun/internal/core"
)

// textScale enlarges the built-in debug font.
const textScale = 2

// Game is what the window front end drives.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst core.Surface)
	State() core.GameState
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {A: 255},
	core.ColorBlack:   {A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:     {R: 255, A: 255},
	core.ColorGreen:   {G: 255, A: 255},
	core.ColorBlue:    {B: 255, A: 255},
	core.ColorGray:    {R: 128, G: 128, B: 128, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// app implements ebiten.Game.
type app struct {
	game    Game
	logger  *log.Logger
	width   int
	height  int
	surface *Surface
	state   core.GameState
}

// Update samples the keyboard and advances the session by one tick.
func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.logger.Info("window closed", "score", a.state.Score)
		return ebiten.Termination
	}

	prev := a.state.Phase
	result := a.game.Step(sampleInput())
	a.state = result.State
	if result.Err != nil {
		a.logger.Error("score store failed", "err", result.Err)
		return result.Err
	}

	if a.state.Phase != prev && a.state.Phase == core.PhaseGameOver {
		a.logger.Info("game over", "score", a.state.Score, "ticks", a.state.Ticks)
	}
	if a.state.Phase == core.PhaseTerminal {
		return ebiten.Termination
	}
	return nil
}

// sampleInput builds this tick's input frame. Jump and descend follow held
// keys; the rest are edge triggered.
func sampleInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Set(core.ActionDescend)
	}
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		in.Set(core.ActionAnyKey)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in
}

func (a *app) Draw(screen *ebiten.Image) {
	a.surface.dst = screen
	a.game.Render(a.surface)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens a window for game and blocks until the session ends or the
// window is closed. A zero seed is replaced with a time-based one.
func Run(game Game, cfg core.RuntimeConfig, worldW, worldH float64, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	a := &app{
		game:    game,
		logger:  logger,
		width:   int(worldW),
		height:  int(worldH),
		surface: NewSurface(nil),
	}
	game.Reset(cfg)
	logger.Info("session started", "seed", cfg.Seed)

	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("Dino Run")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
