package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/core"
)

// Game is what the terminal front end drives. The simulation is pure: it
// never sees Bubble Tea, wall-clock time or the terminal size.
type Game interface {
	// ID returns a unique identifier, used for screenshot names.
	ID() string
	// Reset starts a new session.
	Reset(cfg core.RuntimeConfig)
	// Step advances the session by one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current screen in world units.
	Render(dst core.Surface)
	State() core.GameState
}

// Model is the Bubble Tea model for running one session.
type Model struct {
	game       Game
	screen     *core.Screen
	surface    *CellSurface
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	finished   bool  // Session reached its terminal phase
	err        error // Fatal error from the simulation
}

// NewModel creates a model for game on a worldW x worldH world.
// A zero seed is replaced with a time-based one.
func NewModel(game Game, cfg core.RuntimeConfig, worldW, worldH float64, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:       game,
		screen:     screen,
		surface:    NewCellSurface(screen, worldW, worldH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is resolution independent; only the raster changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState.Phase

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("score store failed", "err", result.Err)
		return m, tea.Quit
	}

	if m.gameState.Phase != prev {
		m.logger.Debug("phase changed", "from", prev, "to", m.gameState.Phase)
		if m.gameState.Phase == core.PhaseGameOver {
			m.logger.Info("game over", "score", m.gameState.Score, "ticks", m.gameState.Ticks)
		}
	}

	if m.gameState.Phase == core.PhaseTerminal {
		m.finished = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to ~/.dinorun/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".dinorun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.surface)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Finished returns true once the session reached its terminal phase.
func (m Model) Finished() bool {
	return m.finished
}

// Err returns the fatal simulation error, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts a Bubble Tea program for game and blocks until the session
// ends. It returns the simulation's fatal error, if any.
func Run(game Game, cfg core.RuntimeConfig, worldW, worldH float64, logger *log.Logger) error {
	model := NewModel(game, cfg, worldW, worldH, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
